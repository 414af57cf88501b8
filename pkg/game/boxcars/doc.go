// Package boxcars implements a small worked game: two companies, three
// trains, a handful of named tiles, and one connection bonus, enough to
// drive an end-to-end search without depending on any specific
// historical 18xx title's proprietary board.
package boxcars
