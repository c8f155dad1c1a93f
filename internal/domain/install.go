package domain

type Install struct {
	Dir      string
	Versions []Version
}

func (i Install) Version(name string) (Version, bool) {
	for _, v := range i.Versions {
		if v.Name == name {
			return v, true
		}
	}
	return Version{}, false
}

// Version is one independently configured copy of the game under the
// install root (a client folder like "_retail_"). Identity is the folder
// name.
type Version struct {
	Name string
	Wtfs []Wtf
}

type Role int

const (
	RoleSource Role = iota
	RoleTarget
)

func (r Role) String() string {
	if r == RoleSource {
		return "source"
	}
	return "target"
}

// SelectableWtfs returns the configuration leaves offered for a role.
// Characters without a SavedVariables folder are hidden from the source
// side, since there is nothing meaningful to copy from them. The target
// side sees everything because copying creates the missing layout.
func (v Version) SelectableWtfs(role Role) []Wtf {
	if role == RoleTarget {
		return v.Wtfs
	}
	var out []Wtf
	for _, w := range v.Wtfs {
		if w.HasVars {
			out = append(out, w)
		}
	}
	return out
}

// Wtf identifies one character's configuration location inside a version:
// WTF/Account/<account>/<realm>/<character>.
type Wtf struct {
	Account   string
	Realm     string
	Character string
	HasVars   bool
}

func (w Wtf) String() string {
	return w.Account + "/" + w.Realm + "/" + w.Character
}
