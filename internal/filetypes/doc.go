// Package filetypes implements the "add file type" dialog of the event
// editing module: a modal form collecting the name, allowed extensions,
// filename template and flags of a new file type, and handing the result to
// a Creator.
package filetypes
