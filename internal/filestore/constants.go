package filestore

const (
	LogMsgLoadedFromDisk = "Save blob loaded from disk"
	LogMsgWrittenToDisk  = "Save blob written to disk"
)
