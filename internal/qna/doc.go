// Package qna models QnA knowledge base files and the form used to rename
// them.
//
// A knowledge base file is identified by its file name without extension,
// e.g. "faq.source.en-us". The knowledge base name is the part before the
// first dot. Files imported from a FAQ website record it in a header option:
//
//	> !# @url = https://example.com/faq
//
//	# ? How do I reset my password?
//	...
//
// NewEditForm wires the name and url validators into a form.Form. The url is
// required only for knowledge bases imported from a website.
package qna
