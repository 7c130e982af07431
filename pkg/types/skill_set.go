package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// SkillSeparator joins skills in their stored text form.
const SkillSeparator = ","

// SkillSet is an ordered set of mentor skills. Order of first appearance is
// kept; blanks and repeats are dropped. It persists as the comma-joined text
// that mentor search filters and sorts on.
type SkillSet []string

func NewSkillSet(skills ...string) SkillSet {
	out := make(SkillSet, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}

// ParseSkillSet rebuilds a set from its joined form.
func ParseSkillSet(joined string) SkillSet {
	if strings.TrimSpace(joined) == "" {
		return SkillSet{}
	}
	return NewSkillSet(strings.Split(joined, SkillSeparator)...)
}

// Separated returns the first skill holding SkillSeparator. Such a skill
// would split into several on its next read.
func (s SkillSet) Separated() (string, bool) {
	for _, skill := range s {
		if strings.Contains(skill, SkillSeparator) {
			return skill, true
		}
	}
	return "", false
}

func (s SkillSet) Join() string {
	return strings.Join(s, SkillSeparator)
}

func (s SkillSet) Contains(skill string) bool {
	for _, existing := range s {
		if existing == skill {
			return true
		}
	}
	return false
}

// MatchesFilter applies the mentor search rule: a case-sensitive substring
// match against the joined text, so a filter may span a separator.
func (s SkillSet) MatchesFilter(filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(s.Join(), filter)
}

func (s SkillSet) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NewSkillSet(raw...)
	return nil
}

func (s SkillSet) Value() (driver.Value, error) {
	return s.Join(), nil
}

func (s *SkillSet) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = SkillSet{}
	case string:
		*s = ParseSkillSet(v)
	case []byte:
		*s = ParseSkillSet(string(v))
	default:
		return fmt.Errorf("SkillSet: unsupported Scan type %T", src)
	}
	return nil
}
