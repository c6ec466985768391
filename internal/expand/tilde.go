package expand

import (
	"fmt"
	"os"
	"os/user"
)

// TildeExpand expands a "~" or "~login" prefix (prefix includes the
// leading '~') per spec.md 4.7.1: an empty login name resolves to
// $HOME, falling back to the current user's password-database home;
// a named login resolves to that user's home.
func TildeExpand(prefix string) (string, error) {
	if len(prefix) == 0 || prefix[0] != '~' {
		return "", fmt.Errorf("expand: not a tilde prefix %q", prefix)
	}

	login := prefix[1:]

	if login == "" {
		if home := os.Getenv("HOME"); home != "" {
			return home, nil
		}
		u, err := user.Current()
		if err != nil || u.HomeDir == "" {
			return "", fmt.Errorf("expand: no home directory")
		}
		return u.HomeDir, nil
	}

	u, err := user.Lookup(login)
	if err != nil || u.HomeDir == "" {
		return "", fmt.Errorf("expand: no such user %q", login)
	}
	return u.HomeDir, nil
}
