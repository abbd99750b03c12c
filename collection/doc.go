// Package collection implements the StashQ query builder and request
// dispatcher.
//
// A Client wraps a Transport. Client.Collection returns a builder for one
// named collection; modifier calls (Where, Sort, Limit, ...) accumulate query
// state on the builder and return it for chaining, and a terminal verb (Get,
// Find, Create, ...) compiles the accumulated state into a wire descriptor,
// resets the builder, and dispatches the request through the transport:
//
//	client := collection.NewClient(transport)
//	posts, err := client.Collection("posts")
//	if err != nil {
//		// the collection name is malformed
//	}
//	docs, err := posts.Where("status", "published").
//		Sort("created_at", -1).
//		Limit(20).
//		Get(ctx)
//
// Compiling is a fetch-and-clear operation: the descriptor reflects builder
// state exactly as of the terminal call, and the builder is reset before any
// I/O happens. The builder is immediately reusable for the next chain.
//
// A builder is not safe for concurrent use. Starting a second modifier chain
// while a previous terminal call is still in flight on another goroutine is
// safe for the first request (its descriptor was already captured), but the
// builder no longer holds the first chain's state.
package collection
