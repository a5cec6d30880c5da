package mime

type Charset = string

const (
	UTF8 Charset = "UTF-8"
)
