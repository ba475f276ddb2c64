// Package project loads the knowledge base files of a bot project directory
// and renames them on disk.
package project
