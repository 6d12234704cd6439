// Package slack builds Slack incoming-webhook message bodies.
//
// Leaf values are validated when constructed: Text is escaped by NewText,
// Color and URL are checked by ParseColor and ParseURL. Once a Payload tree
// is assembled, Encode cannot fail and yields a map holding only the keys
// whose values are set.
package slack
