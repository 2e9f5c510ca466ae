package util

const (
	REPOSITORY_NOT_EXISTS_ERROR  = "repository does not exist"
	REFERENCE_NOT_FOUND_ERROR    = "reference not found"
	REVISION_NOT_FOUND_ERROR     = "revision not found"
	OBJECT_NOT_FOUND_ERROR       = "object not found"
	CHECK_REPO_MESSAGE_RESPONSE  = "Please check if the repository exists under the configured git base directory"
	CHECK_REF_MESSAGE_RESPONSE   = "Please check if the requested branch, tag or commit exists in the repository"
	GIT_TIMEOUT_MESSAGE_RESPONSE = "Reading the repository took too long, try a smaller range"
)

// set at build time with -ldflags "-X github.com/goosewin/chronicler/util.GitCommit=..."
var (
	GitCommit = "unknown"
	BuildTime = "unknown"
)
