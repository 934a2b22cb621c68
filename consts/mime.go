package consts

const (
	MIMETextPlain   = "text/plain"
	MIMEOctetStream = "application/octet-stream"
	MIMEFormData    = "application/x-www-form-urlencoded"
	MIMEJSON        = "application/json"
	MIMEXML         = "application/xml"
	MIMEHTML        = "text/html"
	MIMECSS         = "text/css"
	MIMEJS          = "text/javascript"
	MIMECSV         = "text/csv"
	MIMEPDF         = "application/pdf"
	MIMEPNG         = "image/png"
	MIMEJPEG        = "image/jpeg"
	MIMEGIF         = "image/gif"
	MIMESVG         = "image/svg"
	MIMEZIP         = "application/zip"
)
