package commands

import (
	"time"

	"eraisubs/internal/application"
	"eraisubs/internal/domain"
)

// StartOptions selects the directory the browser opens at
type StartOptions struct {
	BaseURL string
	Year    int
	Latest  bool
	Now     func() time.Time
}

// StartURL returns the first listing URL: the year directory when Year is
// set, else the current season when Latest is set, else the root directory.
func StartURL(opts StartOptions) (string, error) {
	if opts.Year != 0 {
		if err := application.ValidateYear(opts.Year); err != nil {
			return "", err
		}
		return domain.DirURL(opts.BaseURL, domain.YearDir(opts.Year)), nil
	}

	if opts.Latest {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		return domain.DirURL(opts.BaseURL, domain.SeasonDir(now())), nil
	}

	return domain.DirURL(opts.BaseURL, domain.RootDir), nil
}
