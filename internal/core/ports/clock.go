package ports

import "time"

// Clock is the time source of the application layer. clockz.Clock satisfies it.
type Clock interface {
	Now() time.Time
}
