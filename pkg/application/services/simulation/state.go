package simulation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mpd-industries/planner/pkg/domain/entities"
)

// reorderAccum accumulates same-day replenishments for one material:
// quantities are summed, reasons concatenated.
type reorderAccum struct {
	quantity decimal.Decimal
	reasons  []string
}

func (a *reorderAccum) add(qty decimal.Decimal, reason string) {
	a.quantity = a.quantity.Add(qty)
	a.reasons = append(a.reasons, reason)
}

// dayActivity is everything logged against one simulated calendar day.
type dayActivity struct {
	usage       map[entities.MaterialCode]decimal.Decimal
	usageTrail  map[entities.MaterialCode][]string
	placed      map[entities.MaterialCode]*reorderAccum
	arrived     map[entities.MaterialCode]*reorderAccum
	endingStock map[entities.MaterialCode]decimal.Decimal
}

func newDayActivity() *dayActivity {
	return &dayActivity{
		usage:      make(map[entities.MaterialCode]decimal.Decimal),
		usageTrail: make(map[entities.MaterialCode][]string),
		placed:     make(map[entities.MaterialCode]*reorderAccum),
		arrived:    make(map[entities.MaterialCode]*reorderAccum),
	}
}

// runState is the mutable state of one simulation run. It is created fresh
// per run, owned exclusively by the engine, and discarded after aggregation.
type runState struct {
	currentStock map[entities.MaterialCode]decimal.Decimal
	occupancy    map[time.Time]map[entities.ReactorID]bool
	days         map[time.Time]*dayActivity
	opening      map[entities.MaterialCode]decimal.Decimal
}

func newRunState(openingStock map[entities.MaterialCode]decimal.Decimal) *runState {
	st := &runState{
		currentStock: make(map[entities.MaterialCode]decimal.Decimal, len(openingStock)),
		occupancy:    make(map[time.Time]map[entities.ReactorID]bool),
		days:         make(map[time.Time]*dayActivity),
		opening:      make(map[entities.MaterialCode]decimal.Decimal, len(openingStock)),
	}
	for code, qty := range openingStock {
		st.currentStock[code] = qty
		st.opening[code] = qty
	}
	return st
}

func (s *runState) day(d time.Time) *dayActivity {
	act, ok := s.days[d]
	if !ok {
		act = newDayActivity()
		s.days[d] = act
	}
	return act
}

// ensureMaterial registers a material in the ledger with zero stock if it has
// never been seen. Materials appear here the first time a batch or reorder
// touches them.
func (s *runState) ensureMaterial(code entities.MaterialCode) {
	if _, ok := s.currentStock[code]; !ok {
		s.currentStock[code] = decimal.Zero
	}
}

// consume subtracts an already-rounded usage quantity from stock (stock may
// go negative within the day) and logs the usage with its context
// annotation. A negative usage credits stock back.
func (s *runState) consume(day time.Time, code entities.MaterialCode, usage decimal.Decimal, context string) {
	s.ensureMaterial(code)
	s.currentStock[code] = s.currentStock[code].Sub(usage)

	act := s.day(day)
	act.usage[code] = act.usage[code].Add(usage)
	act.usageTrail[code] = append(act.usageTrail[code], context)
}

// credit adds a finished-goods or replenishment quantity to stock without
// logging usage.
func (s *runState) credit(code entities.MaterialCode, qty decimal.Decimal) {
	s.ensureMaterial(code)
	s.currentStock[code] = s.currentStock[code].Add(qty)
}

// recordReorder applies one placement: the placed record goes under the
// back-dated place date, the arrival under the day that triggered it, and
// the ordered quantity is credited to stock the same day. Records for the
// same material and day merge.
func (s *runState) recordReorder(p placement) {
	placedDay := s.day(p.PlaceDate)
	acc, ok := placedDay.placed[p.MaterialCode]
	if !ok {
		acc = &reorderAccum{}
		placedDay.placed[p.MaterialCode] = acc
	}
	acc.add(p.Quantity, p.Reason)

	arrivedDay := s.day(p.ArrivalDate)
	acc, ok = arrivedDay.arrived[p.MaterialCode]
	if !ok {
		acc = &reorderAccum{}
		arrivedDay.arrived[p.MaterialCode] = acc
	}
	acc.add(p.Quantity, p.Reason)

	s.credit(p.MaterialCode, p.Quantity)
}

// reserveReactor checks the batch's whole occupied day-span before marking
// any of it, so a conflicting batch leaves no partial occupancy behind.
func (s *runState) reserveReactor(day time.Time, b entities.Batch) error {
	span := b.OccupancyDays()
	for offset := 0; offset < span; offset++ {
		d := day.AddDate(0, 0, offset)
		if s.occupancy[d][b.ReactorID] {
			return &entities.SchedulingConflictError{
				ReactorID: b.ReactorID,
				Date:      d,
				BatchName: b.DisplayName(),
			}
		}
	}
	for offset := 0; offset < span; offset++ {
		d := day.AddDate(0, 0, offset)
		if s.occupancy[d] == nil {
			s.occupancy[d] = make(map[entities.ReactorID]bool)
		}
		s.occupancy[d][b.ReactorID] = true
	}
	return nil
}

// snapshot records the rounded end-of-day stock for every material in the
// ledger.
func (s *runState) snapshot(day time.Time) {
	act := s.day(day)
	act.endingStock = make(map[entities.MaterialCode]decimal.Decimal, len(s.currentStock))
	for code, qty := range s.currentStock {
		act.endingStock[code] = qty.Round(usageDecimalPlaces)
	}
}

// stockCodes returns every material in the ledger in sorted order, for
// deterministic iteration.
func (s *runState) stockCodes() []entities.MaterialCode {
	codes := make([]entities.MaterialCode, 0, len(s.currentStock))
	for code := range s.currentStock {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// sortedDays returns every logged day in calendar order.
func (s *runState) sortedDays() []time.Time {
	days := make([]time.Time, 0, len(s.days))
	for d := range s.days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
