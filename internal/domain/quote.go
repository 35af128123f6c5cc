// Package domain contains core business entities and rules.
package domain

// Quote is the normalized quotation displayed to the user.
// It is a domain entity with no knowledge of which backend produced it:
// both supported quote APIs are translated into this shape by the ACL.
// A Quote is immutable once produced; a successful fetch replaces it wholesale.
type Quote struct {
	// Text is the body of the quote.
	Text string

	// Author is who said or wrote the quote.
	Author string
}
