// Package markdown splits content documents into front matter and body and
// renders the Markdown body into HTML. Both steps are pure: no filesystem or
// network access happens here.
package markdown
