package ctxkeys

type Key int

const (
	Language Key = iota // language.Tag: negotiated UI locale
)
