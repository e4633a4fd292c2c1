package syscalls

import "fmt"

// Category is the closed classification set used for filtering and the
// summary, matching strace's -e trace= classes.
type Category int

const (
	File Category = iota
	Network
	Process
	Memory
	Signal
	IPC
	Thread
	Time
	Sysinfo
	Security
	Debug
	Misc
)

var categoryNames = [...]string{
	File:     "file",
	Network:  "network",
	Process:  "process",
	Memory:   "memory",
	Signal:   "signal",
	IPC:      "ipc",
	Thread:   "thread",
	Time:     "time",
	Sysinfo:  "sysinfo",
	Security: "security",
	Debug:    "debug",
	Misc:     "misc",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}

	return fmt.Sprintf("category_%d", int(c))
}

// ParseCategory resolves a category tag; ok is false for anything outside
// the closed set.
func ParseCategory(s string) (Category, bool) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), true
		}
	}

	return Misc, false
}

// Categories lists the closed set in declaration order.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}

	return out
}
