package status

// KnownCodes lists every code the registry has a reason phrase for.
var KnownCodes = []Code{
	Continue, SwitchingProtocols, Processing, EarlyHints,

	OK, Created, Accepted, NonAuthoritativeInfo, NoContent, ResetContent, PartialContent,
	MultiStatus, AlreadyReported, IMUsed,

	MultipleChoices, MovedPermanently, Found, SeeOther, NotModified, UseProxy,
	TemporaryRedirect, PermanentRedirect,

	BadRequest, Unauthorized, PaymentRequired, Forbidden, NotFound, MethodNotAllowed,
	NotAcceptable, ProxyAuthRequired, RequestTimeout, Conflict, Gone, LengthRequired,
	PreconditionFailed, PayloadTooLarge, URITooLong, UnsupportedMediaType,
	RangeNotSatisfiable, ExpectationFailed, Teapot, MisdirectedRequest, UnprocessableEntity,
	Locked, FailedDependency, TooEarly, UpgradeRequired, PreconditionRequired, TooManyRequests,
	RequestHeaderFieldsTooLarge, UnavailableForLegalReasons,

	InternalServerError, NotImplemented, BadGateway, ServiceUnavailable, GatewayTimeout,
	HTTPVersionNotSupported, VariantAlsoNegotiates, InsufficientStorage, LoopDetected,
	NotExtended, NetworkAuthenticationRequired,
}

// Valid reports whether the code may be carried by a response.
func Valid(code Code) bool {
	return code >= MinCode && code <= MaxCode
}

// IsInformational reports whether the code belongs to the 1xx class.
func IsInformational(code Code) bool {
	return code >= 100 && code < 200
}

// AllowsBody reports whether a response with the code may carry a body. 1xx, 204 and
// 304 responses never do.
func AllowsBody(code Code) bool {
	return !IsInformational(code) && code != NoContent && code != NotModified
}
