package frame

// Observer receives parser events as they happen, separately from the
// values FeedByte/Feed return to their caller. It mirrors the
// hook-callback shape used elsewhere in this module for async
// transport events: optional, side-effecting, and never able to
// change the parser's own control flow.
type Observer interface {
	// OnFrame is called for every successfully parsed, CRC-verified
	// frame, in addition to it being returned/passed to the caller.
	OnFrame(Message)
	// OnCRCError is called when a frame's trailing CRC does not match
	// the computed checksum.
	OnCRCError()
	// OnSyncError is called when the parser discards a byte or buffer
	// while searching for the next frame's header.
	OnSyncError()
	// OnOverflow is called when a declared or accumulated payload
	// would exceed MaxPayloadSize or the frame buffer.
	OnOverflow()
}
