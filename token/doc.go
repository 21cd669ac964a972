// Package token provides the low-level text codec shared by the parser
// and encoder: quoted-string escaping and unescaping, number scanning
// and formatting, positions, and the comment-stripping minifier.
package token
