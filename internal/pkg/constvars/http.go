package constvars

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-Id"
)

const (
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"
	MIMEApplicationPDF  = "application/pdf"
)

const (
	StatusOK       = 200
	StatusCreated  = 201
	StatusAccepted = 202

	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusForbidden    = 403
	StatusNotFound     = 404
	StatusConflict     = 409
	StatusGone         = 410

	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)
