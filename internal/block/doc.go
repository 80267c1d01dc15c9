// Package block defines the signal-processing building blocks: racks,
// blocks, and the typed ports that connect them.
//
// A Rack owns every block and port and hands out stable integer handles,
// so the connection topology is stored as handle adjacency instead of
// pointer webs. Ports come in two families (value and message) and three
// roles (input, output, relay). Values are snapshots read on demand;
// messages are pushed into bounded queues on the receiving side.
//
// The `graph` package derives execution graphs from the connections made
// here; this package stays purely structural apart from Block.Update.
package block
