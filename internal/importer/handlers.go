package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/guyitswalid/corefit/internal/entities"
)

// lookup is the outcome of the duplicate-resolution step for one record.
type lookup struct {
	existingID uint   // non-zero when an entity with the same natural key exists
	softError  string // non-empty when the record must be skipped, not failed
}

// entityHandler is implemented once per import data type. The orchestrator
// picks one handler at run start and drives every record through the same
// validate -> lookup -> update-or-insert sequence.
type entityHandler interface {
	// Validate returns the required fields missing from the mapped record.
	Validate(mapped map[string]string) []string
	// Lookup resolves the record's natural key against the store.
	Lookup(run *runState, mapped map[string]string) (lookup, error)
	// ApplyUpdate overwrites the existing entity with the mapped fields.
	ApplyUpdate(id uint, mapped map[string]string) error
	// Insert builds the full entity payload, applying defaults, and persists it.
	Insert(run *runState, mapped map[string]string) error
}

func missingRequired(mapped map[string]string, fields ...string) []string {
	var missing []string
	for _, f := range fields {
		if mapped[f] == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// memberHandler imports gym members. Natural key: email, falling back
// to phone when no email column is mapped.
type memberHandler struct {
	members MemberStore
}

func (h *memberHandler) Validate(mapped map[string]string) []string {
	return missingRequired(mapped, "first_name", "last_name")
}

func (h *memberHandler) Lookup(run *runState, mapped map[string]string) (lookup, error) {
	if email := mapped["email"]; email != "" {
		existing, err := h.members.FindByEmail(run.tenantID, email)
		if err != nil {
			return lookup{}, err
		}
		if existing != nil {
			return lookup{existingID: existing.ID}, nil
		}
		return lookup{}, nil
	}
	if phone := mapped["phone"]; phone != "" {
		existing, err := h.members.FindByPhone(run.tenantID, phone)
		if err != nil {
			return lookup{}, err
		}
		if existing != nil {
			return lookup{existingID: existing.ID}, nil
		}
	}
	return lookup{}, nil
}

var memberColumns = []string{
	"first_name", "last_name", "email", "phone", "gender",
	"date_of_birth", "address", "emergency_contact", "status",
}

func (h *memberHandler) ApplyUpdate(id uint, mapped map[string]string) error {
	fields := make(map[string]any)
	for _, col := range memberColumns {
		if value, ok := mapped[col]; ok {
			fields[col] = value
		}
	}
	return h.members.Update(id, fields)
}

func (h *memberHandler) Insert(run *runState, mapped map[string]string) error {
	status := entities.MemberStatus(mapped["status"])
	if status == "" {
		status = entities.MemberStatusActive
	}
	member := &entities.Member{
		TenantID:         run.tenantID,
		FirstName:        mapped["first_name"],
		LastName:         mapped["last_name"],
		Email:            mapped["email"],
		Phone:            mapped["phone"],
		Gender:           mapped["gender"],
		DateOfBirth:      mapped["date_of_birth"],
		Address:          mapped["address"],
		EmergencyContact: mapped["emergency_contact"],
		Status:           status,
		JoinDate:         time.Now(),
	}
	return h.members.Create(member)
}

// packageHandler imports membership packages. Natural key: package name
// within the tenant.
type packageHandler struct {
	packages PackageStore
}

func (h *packageHandler) Validate(mapped map[string]string) []string {
	return missingRequired(mapped, "name", "price", "duration")
}

func (h *packageHandler) Lookup(run *runState, mapped map[string]string) (lookup, error) {
	existing, err := h.packages.FindByName(run.tenantID, mapped["name"])
	if err != nil {
		return lookup{}, err
	}
	if existing != nil {
		return lookup{existingID: existing.ID}, nil
	}
	return lookup{}, nil
}

func (h *packageHandler) ApplyUpdate(id uint, mapped map[string]string) error {
	fields := make(map[string]any)
	for _, col := range []string{"name", "description", "features", "status"} {
		if value, ok := mapped[col]; ok {
			fields[col] = value
		}
	}
	if raw, ok := mapped["price"]; ok {
		price, err := parsePrice(raw)
		if err != nil {
			return err
		}
		fields["price"] = price
	}
	if raw, ok := mapped["duration"]; ok {
		duration, err := parseDuration(raw)
		if err != nil {
			return err
		}
		fields["duration_days"] = duration
	}
	return h.packages.Update(id, fields)
}

func (h *packageHandler) Insert(run *runState, mapped map[string]string) error {
	price, err := parsePrice(mapped["price"])
	if err != nil {
		return err
	}
	duration, err := parseDuration(mapped["duration"])
	if err != nil {
		return err
	}
	status := mapped["status"]
	if status == "" {
		status = "active"
	}
	pkg := &entities.GymPackage{
		TenantID:     run.tenantID,
		Name:         mapped["name"],
		Description:  mapped["description"],
		Price:        price,
		DurationDays: duration,
		Features:     mapped["features"],
		Status:       status,
	}
	return h.packages.Create(pkg)
}

// checkInHandler imports check-in events. There is no duplicate notion for
// check-ins; the lookup step resolves user_email to a member id, cached per
// run so repeated emails cost one query.
type checkInHandler struct {
	members  MemberStore
	checkIns CheckInStore
}

func (h *checkInHandler) Validate(mapped map[string]string) []string {
	return missingRequired(mapped, "user_email", "check_in_time")
}

func (h *checkInHandler) Lookup(run *runState, mapped map[string]string) (lookup, error) {
	email := mapped["user_email"]
	if _, ok := run.memberIDs[email]; ok {
		return lookup{}, nil
	}
	member, err := h.members.FindByEmail(run.tenantID, email)
	if err != nil {
		return lookup{}, err
	}
	if member == nil {
		return lookup{softError: fmt.Sprintf("no member found with email %s", email)}, nil
	}
	run.memberIDs[email] = member.ID
	return lookup{}, nil
}

func (h *checkInHandler) ApplyUpdate(id uint, mapped map[string]string) error {
	// Lookup never reports duplicates for check-ins.
	return nil
}

func (h *checkInHandler) Insert(run *runState, mapped map[string]string) error {
	checkInTime, err := parseTimestamp(mapped["check_in_time"])
	if err != nil {
		return fmt.Errorf("invalid check_in_time: %w", err)
	}

	checkIn := &entities.CheckIn{
		TenantID:    run.tenantID,
		MemberID:    run.memberIDs[mapped["user_email"]],
		CheckInTime: checkInTime,
		Notes:       mapped["notes"],
	}
	if raw := mapped["check_out_time"]; raw != "" {
		checkOutTime, err := parseTimestamp(raw)
		if err != nil {
			return fmt.Errorf("invalid check_out_time: %w", err)
		}
		checkIn.CheckOutTime = &checkOutTime
	}
	return h.checkIns.Create(checkIn)
}

// membershipHandler is the dedicated variant for membership imports.
// It is not yet routed: handlerFor still aliases memberships to the member
// handler, so membership-specific fields pass through unconsumed.
type membershipHandler struct {
	members  MemberStore
	packages PackageStore
}

func (h *membershipHandler) Validate(mapped map[string]string) []string {
	return missingRequired(mapped, "user_email", "package_name")
}

func (h *membershipHandler) Lookup(run *runState, mapped map[string]string) (lookup, error) {
	return lookup{}, fmt.Errorf("membership import is not implemented")
}

func (h *membershipHandler) ApplyUpdate(id uint, mapped map[string]string) error {
	return fmt.Errorf("membership import is not implemented")
}

func (h *membershipHandler) Insert(run *runState, mapped map[string]string) error {
	return fmt.Errorf("membership import is not implemented")
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	return price, nil
}

func parseDuration(raw string) (int, error) {
	duration, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}
	return duration, nil
}

// parseTimestamp accepts the datetime shapes commonly seen in exports.
func parseTimestamp(raw string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
		"01/02/2006 15:04",
		"01/02/2006",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", raw)
}

// Compile-time interface checks
var (
	_ entityHandler = (*memberHandler)(nil)
	_ entityHandler = (*packageHandler)(nil)
	_ entityHandler = (*checkInHandler)(nil)
	_ entityHandler = (*membershipHandler)(nil)
)
