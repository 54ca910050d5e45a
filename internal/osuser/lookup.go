package osuser

import (
	"os/user"
	"strconv"
	"sync"
)

// UserLookupFunc looks up an OS user by numeric id.
type UserLookupFunc func(string) (*user.User, error)

// GroupLookupFunc looks up an OS group by numeric id.
type GroupLookupFunc func(string) (*user.Group, error)

// DefaultUserLookup and DefaultGroupLookup can be replaced in tests.
var (
	DefaultUserLookup  UserLookupFunc  = user.LookupId
	DefaultGroupLookup GroupLookupFunc = user.LookupGroupId
)

// Resolver memoizes uid and gid to name lookups. Unknown ids resolve to
// their decimal form.
type Resolver struct {
	mu     sync.Mutex
	users  map[uint32]string
	groups map[uint32]string
}

func NewResolver() *Resolver {
	return &Resolver{
		users:  make(map[uint32]string),
		groups: make(map[uint32]string),
	}
}

func (resolver *Resolver) UserName(uid uint32) string {
	resolver.mu.Lock()
	defer resolver.mu.Unlock()
	if name, ok := resolver.users[uid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(uid), 10)
	name := id
	if found, err := DefaultUserLookup(id); err == nil && found.Username != "" {
		name = found.Username
	}
	resolver.users[uid] = name
	return name
}

func (resolver *Resolver) GroupName(gid uint32) string {
	resolver.mu.Lock()
	defer resolver.mu.Unlock()
	if name, ok := resolver.groups[gid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(gid), 10)
	name := id
	if found, err := DefaultGroupLookup(id); err == nil && found.Name != "" {
		name = found.Name
	}
	resolver.groups[gid] = name
	return name
}
