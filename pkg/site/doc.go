// Package site hosts form-enabled pages. Pages are markup files read from an
// fs.FS; a GET expands their database tags, a POST captures the submitted
// form and then redirects or re-renders the page with the capture error.
//
// Requests map to files by path: "/" serves index.html, "/contact/" serves
// contact.html (or contact/index.html). Every response is marked
// non-cacheable because pages reflect per-request capture state.
package site
