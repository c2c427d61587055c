/*
Package collection holds an ordered, append-only set of shapes.

Insertion order is display order: index i in the rendered table is the i-th
shape added. The collection offers two aggregate scans (largest perimeter,
largest area) and renders itself as a bordered ASCII table whose column widths
are recomputed from content on every render.

A Collection is not safe for concurrent use. Callers sharing one across
goroutines must serialize access themselves.
*/
package collection
