package core

import (
	"encoding/json"
	"os"
)

// CLIResponse is the structured JSON output for --json command invocations.
//
// Schema:
//
//	{
//	  "success": true|false,
//	  "data": { ... },          // Command-specific payload (omitted on error)
//	  "error": {                // Present only on failure
//	    "code": "PARSE_FAILED",
//	    "message": "Human-readable description"
//	  }
//	}
type CLIResponse struct {
	Success bool            `json:"success"`
	Data    interface{}     `json:"data,omitempty"`
	Error   *CLIErrorDetail `json:"error,omitempty"`
}

// CLIErrorDetail contains machine-readable error code and human-readable message.
type CLIErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CLI exit codes.
const (
	ExitSuccess          = 0
	ExitGeneralError     = 1
	ExitNotGitRepo       = 2
	ExitInvalidArguments = 3
	ExitValidationFailed = 4
)

// CLI error codes for structured JSON error responses.
const (
	ErrCodeInvalidArguments = "INVALID_ARGUMENTS"
	ErrCodeNotGitRepo       = "NOT_GIT_REPO"
	ErrCodeConfigError      = "CONFIG_ERROR"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// EmitCLISuccess writes a successful CLIResponse as JSON to stdout.
func EmitCLISuccess(data interface{}) {
	resp := CLIResponse{Success: true, Data: data}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) //nolint:errcheck
}

// EmitCLIError writes an error CLIResponse as JSON to stdout and returns
// the exit code for the caller to use with os.Exit.
func EmitCLIError(code string, message string, exitCode int) int {
	resp := CLIResponse{
		Success: false,
		Error:   &CLIErrorDetail{Code: code, Message: message},
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) //nolint:errcheck
	return exitCode
}
