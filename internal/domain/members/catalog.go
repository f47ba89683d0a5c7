package members

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gym-backend/internal/domain/apperr"
)

// CustomPlan labels an admin-chosen expiry that matches no catalog entry.
const CustomPlan = "Custom"

const DefaultCatalog = "Monthly:30:1500,3 Months:90:4000,6 Months:180:7500,Yearly:365:14000"

type PlanSpec struct {
	Name  string  `json:"name"`
	Days  int     `json:"days"`
	Price float64 `json:"price"`
}

// Catalog maps every sellable plan name to its duration and price.
type Catalog struct {
	plans map[string]PlanSpec
}

// ParseCatalog reads "name:days:price" entries separated by commas.
func ParseCatalog(raw string) (Catalog, error) {
	c := Catalog{plans: map[string]PlanSpec{}}
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return Catalog{}, fmt.Errorf("plan catalog entry %q: want name:days:price", entry)
		}
		name := strings.TrimSpace(parts[0])
		if name == "" || strings.EqualFold(name, CustomPlan) {
			return Catalog{}, fmt.Errorf("plan catalog entry %q: invalid name", entry)
		}
		days, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || days <= 0 {
			return Catalog{}, fmt.Errorf("plan catalog entry %q: days must be a positive integer", entry)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil || price < 0 {
			return Catalog{}, fmt.Errorf("plan catalog entry %q: price must be a non-negative number", entry)
		}
		if _, dup := c.plans[name]; dup {
			return Catalog{}, fmt.Errorf("plan catalog: %q listed twice", name)
		}
		c.plans[name] = PlanSpec{Name: name, Days: days, Price: price}
	}
	if len(c.plans) == 0 {
		return Catalog{}, fmt.Errorf("plan catalog is empty")
	}
	return c, nil
}

// LoadCatalog parses raw, falling back to the default catalog when raw is empty.
func LoadCatalog(raw string) (Catalog, error) {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultCatalog
	}
	return ParseCatalog(raw)
}

// DurationFor returns the length in days of a catalog plan.
func (c Catalog) DurationFor(plan string) (int, error) {
	p, ok := c.plans[plan]
	if !ok {
		return 0, apperr.Validation("unknown subscription plan %q", plan)
	}
	return p.Days, nil
}

func (c Catalog) Lookup(plan string) (PlanSpec, bool) {
	p, ok := c.plans[plan]
	return p, ok
}

func (c Catalog) IsKnownPlan(plan string) bool {
	_, ok := c.plans[plan]
	return ok
}

// Plans lists the catalog ordered by duration.
func (c Catalog) Plans() []PlanSpec {
	out := make([]PlanSpec, 0, len(c.plans))
	for _, p := range c.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Days != out[j].Days {
			return out[i].Days < out[j].Days
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (c Catalog) PlanNames() []string {
	plans := c.Plans()
	names := make([]string, len(plans))
	for i, p := range plans {
		names[i] = p.Name
	}
	return names
}

var (
	activeMu sync.RWMutex
	active   = mustParse(DefaultCatalog)
)

func mustParse(raw string) Catalog {
	c, err := ParseCatalog(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// UseCatalog replaces the process-wide catalog. Called once at startup.
func UseCatalog(c Catalog) {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = c
}

// ActiveCatalog returns the process-wide catalog.
func ActiveCatalog() Catalog {
	activeMu.RLock()
	defer activeMu.RUnlock()
	return active
}
