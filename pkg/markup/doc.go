// Package markup parses page markup into a tree of tag nodes. Only elements
// carrying the "r:" prefix (for example <r:database:form>) become tag nodes;
// everything else, including plain HTML, comments and doctypes, is kept
// byte-for-byte as raw text so expanding a page never rewrites author markup.
package markup
