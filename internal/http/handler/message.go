package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	msgRegistered        = "user registered successfully"
	msgLoginOK           = "login successful"
	msgLoginFailed       = "Login failed"
	msgLogoutOK          = "logout successful"
	msgNoBucketlists     = "no bucketlists found"
	msgBucketlistDeleted = "bucketlist deleted"
	msgItemDeleted       = "item deleted"
	msgInvalidPage       = "please specify a valid page"
)

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}
