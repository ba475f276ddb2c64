// Package urls provides centralized constants for the documentation URLs used
// throughout kbforms.
//
// Usage:
//
//	import "github.com/muurk/kbforms/internal/urls"
//
//	fmt.Printf("For more information, see: %s\n", urls.QnAFileFormat)
package urls
