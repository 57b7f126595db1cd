package auth

// Level is the numeric privilege tier carried on every user. Lower value
// means broader privilege, so comparisons must go through AtLeast rather
// than raw integers.
type Level int

const (
	LevelAdmin       Level = 1
	LevelDeptManager Level = 2
	LevelDeptHead    Level = 3
	LevelStaff       Level = 4
	LevelVolunteer   Level = 5
	LevelUnassigned  Level = 6
)

// AdminAccessLevel is the broadest level still allowed on the admin
// surface: everything at DeptHead or above.
const AdminAccessLevel = LevelDeptHead

// AtLeast reports whether l carries at least the privilege of min.
// A smaller number is more privilege, so "at least" means numerically
// less than or equal.
func (l Level) AtLeast(min Level) bool {
	return l <= min
}

func (l Level) Valid() bool {
	return l >= LevelAdmin && l <= LevelUnassigned
}

func (l Level) String() string {
	switch l {
	case LevelAdmin:
		return "admin"
	case LevelDeptManager:
		return "dept_manager"
	case LevelDeptHead:
		return "dept_head"
	case LevelStaff:
		return "staff"
	case LevelVolunteer:
		return "volunteer"
	case LevelUnassigned:
		return "unassigned"
	}
	return "unknown"
}
