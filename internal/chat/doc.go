// Package chat implements the chat simulation: an in-memory message store
// and a keyword-matched bot responder. Replies are canned; keyword rules
// can be replaced from a YAML file.
package chat
