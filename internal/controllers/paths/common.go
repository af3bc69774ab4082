package paths

const (
	Home   string = "/"
	Search string = "/search"
	Health string = "/health"
)
