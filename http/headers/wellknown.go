package headers

const (
	ContentType      = "Content-Type"
	ContentLength    = "Content-Length"
	TransferEncoding = "Transfer-Encoding"
	Location         = "Location"
)
