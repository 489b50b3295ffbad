package utils

import (
	"strings"

	"github.com/google/uuid"
)

// InviteCodeLength is the length of generated team invite codes.
const InviteCodeLength = 8

// GenerateInviteCode returns a short uppercase code suitable for the
// join-by-code flow. The code is the first 8 hex characters of a random UUID;
// uniqueness against existing teams is the caller's responsibility.
func GenerateInviteCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:InviteCodeLength])
}
