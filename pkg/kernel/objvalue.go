package kernel

import "strings"

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

// IsValid performs a minimal structural check. Full RFC validation is not
// attempted; the seeder and API only need to reject obviously broken values.
func (e Email) IsValid() bool {
	s := string(e)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}

type Phone string

func (p Phone) String() string { return string(p) }
func (p Phone) IsEmpty() bool  { return string(p) == "" }

type FullName string

func (n FullName) String() string { return string(n) }
func (n FullName) IsEmpty() bool  { return strings.TrimSpace(string(n)) == "" }

// ResumeCategory is the dataset category a resume belongs to (e.g. "ENGINEERING").
type ResumeCategory string

func (c ResumeCategory) String() string { return string(c) }

// BucketKey is an opaque object-storage locator. The ranking engine never
// interprets it; only fsx implementations do.
type BucketKey string

func (k BucketKey) String() string { return string(k) }
func (k BucketKey) IsEmpty() bool  { return string(k) == "" }
