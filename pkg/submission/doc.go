// Package submission models captured form posts: the Submission record, its
// ordered field set, the Store contract persistence backends implement and
// the capture flow that turns an HTTP form post into a stored record.
package submission
