package form

// Values is the read side of a submission. url.Values satisfies it.
type Values interface {
	Get(key string) string
}

// Map adapts a plain map to Values.
type Map map[string]string

func (m Map) Get(key string) string {
	return m[key]
}
