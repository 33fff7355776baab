package index

var (
	bStats = []byte("stats") // key(body, wpm) -> encoded stats
	bMeta  = []byte("meta")  // "version" -> schema version
)

const schemaVersion = "1"
