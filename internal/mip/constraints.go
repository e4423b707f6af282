package mip

import (
	"github.com/medschedulr/roster/internal/calendar"
	"github.com/medschedulr/roster/internal/catalogue"
	"github.com/medschedulr/roster/internal/contract"
	"github.com/medschedulr/roster/internal/domain"
)

// BuildConstraints emits every hard and soft linear (in)equality described
// in spec.md §4.5, plus the objective. phase2 selects between the strict
// coverage/clinic-coverage equalities (Phase 1) and their Big-M-slacked
// relaxations (Phase 2); everything else is phase-independent.
//
// Clinic coverage is not emitted as a separate constraint: clinic:<unit>
// is an ordinary post in the catalogue's weekday list, so the general
// coverage loop below already produces the "exactly one doctor from u"
// equality for it.
func BuildConstraints(m *Model, vs *VariableSet, cal *calendar.Calendar, cat *catalogue.Catalogue, doctors []domain.Doctor, units []domain.Unit, cfg contract.SolverConfig, phase2 bool) {
	doctorsByUnit := make(map[string][]domain.Doctor)
	for _, d := range doctors {
		doctorsByUnit[d.UnitID] = append(doctorsByUnit[d.UnitID], d)
	}

	buildCoverage(m, vs, cal, cat, doctors, cfg, phase2)
	buildOnePostPerDay(m, vs, doctors, cal)
	buildWeekendPairing(m, vs, cal, doctors)
	buildRest(m, vs, cal, cat, doctors, cfg)
	buildClinicDayConflict(m, vs, cal, doctors, units, cfg)
	buildCategoryPenalties(m, vs, cal, doctors, cfg)
	buildMinimumOne(m, vs, doctors, cfg)
	buildGapReward(m, vs, cal, cat, doctors, cfg)
	buildUnitOverCap(m, vs, cal, doctorsByUnit, units, cfg)
	buildWorkloadAwareStandby(m, vs, doctors, cfg)

	if len(m.Objective.Terms) == 0 {
		for _, v := range m.Vars {
			if v.Kind == Binary {
				m.AddObjectiveTerm(v.ID, 1)
			}
		}
	}
}

// buildCoverage: Σ_d x[d,s,t] = 1 (Phase 1) or Σ_d x[d,s,t] + slack ≥ 1,
// Big-M·slack in the objective (Phase 2).
func buildCoverage(m *Model, vs *VariableSet, cal *calendar.Calendar, cat *catalogue.Catalogue, doctors []domain.Doctor, cfg contract.SolverConfig, phase2 bool) {
	for _, day := range cal.Days {
		for _, post := range cat.PostsForDay(day) {
			expr := Expr{}
			for _, d := range doctors {
				if id, ok := lookupX(vs, d.ID, day.Index, post); ok {
					expr = expr.Add(id, 1)
				}
			}
			if !phase2 {
				if len(expr.Terms) == 0 {
					continue
				}
				m.AddConstraint(Constraint{Name: "coverage", Expr: expr, Op: EQ, RHS: 1})
				continue
			}
			slack := vs.CoverageSlack[day.Index][post]
			e := expr
			e = e.Add(slack, 1)
			m.AddConstraint(Constraint{Name: "coverage_soft", Expr: e, Op: GE, RHS: 1})
			m.AddObjectiveTerm(slack, cfg.BigM)
		}
	}
}

// buildOnePostPerDay: Σ_t x[d,s,t] ≤ 1, always hard.
func buildOnePostPerDay(m *Model, vs *VariableSet, doctors []domain.Doctor, cal *calendar.Calendar) {
	for _, d := range doctors {
		dayMap := vs.X[d.ID]
		for _, day := range cal.Days {
			posts := dayMap[day.Index]
			if len(posts) == 0 {
				continue
			}
			expr := Expr{}
			for _, id := range posts {
				expr = expr.Add(id, 1)
			}
			m.AddConstraint(Constraint{Name: "one_post_per_day", Expr: expr, Op: LE, RHS: 1})
		}
	}
}

// buildWeekendPairing emits the AND-gadget, the equality-of-doctor rule,
// the cooldown, the per-horizon cap, and the overflow penalty (spec.md
// §4.5 Weekend Standby / cooldown / cap / overflow).
func buildWeekendPairing(m *Model, vs *VariableSet, cal *calendar.Calendar, doctors []domain.Doctor) {
	for _, d := range doctors {
		wy := vs.Y[d.ID]
		if wy == nil {
			continue
		}
		for _, wp := range cal.WeekendPairs {
			y := wy[wp.Index]
			xSat, satOK := lookupX(vs, d.ID, wp.Saturday, domain.StandbyOncallPost)
			xSun, sunOK := lookupX(vs, d.ID, wp.Sunday, domain.StandbyOncallPost)

			if satOK && sunOK {
				m.AddConstraint(Constraint{Name: "standby_and_1", Expr: Expr{}.Add(y, 1).Add(xSat, -1), Op: LE, RHS: 0})
				m.AddConstraint(Constraint{Name: "standby_and_2", Expr: Expr{}.Add(y, 1).Add(xSun, -1), Op: LE, RHS: 0})
				m.AddConstraint(Constraint{Name: "standby_and_3", Expr: Expr{}.Add(xSat, 1).Add(xSun, 1).Add(y, -1), Op: LE, RHS: 1})
				m.AddConstraint(Constraint{Name: "standby_same_doctor", Expr: Expr{}.Add(xSat, 1).Add(xSun, -1), Op: EQ, RHS: 0})
			} else {
				m.AddConstraint(Constraint{Name: "standby_forced_zero", Expr: Expr{}.Add(y, 1), Op: LE, RHS: 0})
			}
		}

		// Cooldown: y[d,w] + y[d,w+1] ≤ 1 for adjacent weekend pairs.
		for i := 0; i+1 < len(cal.WeekendPairs); i++ {
			a := wy[cal.WeekendPairs[i].Index]
			b := wy[cal.WeekendPairs[i+1].Index]
			m.AddConstraint(Constraint{Name: "standby_cooldown", Expr: Expr{}.Add(a, 1).Add(b, 1), Op: LE, RHS: 1})
		}

		// Horizon cap and overflow: Σ_w y[d,w] ≤ 1, k[d] ≥ Σ_w y[d,w] − 1.
		sumExpr := Expr{}
		for _, wp := range cal.WeekendPairs {
			sumExpr = sumExpr.Add(wy[wp.Index], 1)
		}
		m.AddConstraint(Constraint{Name: "standby_horizon_cap", Expr: sumExpr, Op: LE, RHS: 1})

		k := vs.Overflow[d.ID]
		overflowExpr := Expr{}
		for _, wp := range cal.WeekendPairs {
			overflowExpr = overflowExpr.Add(wy[wp.Index], 1)
		}
		overflowExpr = overflowExpr.Add(k, -1)
		m.AddConstraint(Constraint{Name: "standby_overflow", Expr: overflowExpr, Op: LE, RHS: 1})
		m.AddObjectiveTerm(k, 1000)
	}
}

// buildRest emits the 48h soft rest constraint, excluding Standby Oncall
// from both sides of an actual Sat/Sun Standby pair (spec.md §4.5 Rest,
// §9 "Rest-vs-pairing interaction").
func buildRest(m *Model, vs *VariableSet, cal *calendar.Calendar, cat *catalogue.Catalogue, doctors []domain.Doctor, cfg contract.SolverConfig) {
	isStandbyPair := make(map[int]bool, len(cal.WeekendPairs))
	for _, wp := range cal.WeekendPairs {
		isStandbyPair[wp.Saturday] = true
	}

	for _, d := range doctors {
		rv := vs.RestViolation[d.ID]
		if rv == nil {
			continue
		}
		for i := 0; i+1 < len(cal.Days); i++ {
			s, s1 := cal.Days[i], cal.Days[i+1]
			excludeStandby := isStandbyPair[s.Index]

			expr := Expr{}
			n := onCallTerms(vs, cat, d.ID, s, excludeStandby, &expr)
			n += onCallTerms(vs, cat, d.ID, s1, excludeStandby, &expr)
			if n == 0 {
				continue
			}
			violation := rv[s.Index]
			expr = expr.Add(violation, -1)
			m.AddConstraint(Constraint{Name: "rest", Expr: expr, Op: LE, RHS: 1})
			m.AddObjectiveTerm(violation, cfg.LambdaRest)
		}
	}
}

// onCallTerms appends every on-call (non-clinic) materialised x[d,day,t]
// term to expr and returns how many were added.
func onCallTerms(vs *VariableSet, cat *catalogue.Catalogue, doctorID string, day domain.Day, excludeStandby bool, expr *Expr) int {
	posts := vs.X[doctorID][day.Index]
	n := 0
	for post, id := range posts {
		if !cat.IsOnCall(post) {
			continue
		}
		if excludeStandby && post == domain.StandbyOncallPost {
			continue
		}
		*expr = expr.Add(id, 1)
		n++
	}
	return n
}

// buildClinicDayConflict emits the Δ∈{−1,0,+1} clinic-day conflict
// penalties (spec.md §4.5 Clinic-day conflict penalties).
func buildClinicDayConflict(m *Model, vs *VariableSet, cal *calendar.Calendar, doctors []domain.Doctor, units []domain.Unit, cfg contract.SolverConfig) {
	unitByID := make(map[string]domain.Unit, len(units))
	for _, u := range units {
		unitByID[u.ID] = u
	}

	for _, d := range doctors {
		u, ok := unitByID[d.UnitID]
		if !ok {
			continue
		}
		for _, day := range cal.Days {
			if !u.RunsClinicOn(day.ClinicWeekday()) {
				continue
			}
			for _, delta := range []int{-1, 0, 1} {
				idx := day.Index + delta
				if idx < 0 || idx >= len(cal.Days) {
					continue
				}
				lambda := cfg.ClinicPenaltySame
				switch delta {
				case -1:
					lambda = cfg.ClinicPenaltyBefore
				case 1:
					lambda = cfg.ClinicPenaltyAfter
				}
				for post, id := range vs.X[d.ID][idx] {
					if domain.IsClinicPost(post) {
						continue
					}
					m.AddObjectiveTerm(id, lambda)
				}
			}
		}
	}
}

// buildCategoryPenalties emits the registrar-weekend, junior-on-Ward, and
// senior/registrar-on-ED soft penalties (spec.md §4.5 Category penalties).
func buildCategoryPenalties(m *Model, vs *VariableSet, cal *calendar.Calendar, doctors []domain.Doctor, cfg contract.SolverConfig) {
	for _, d := range doctors {
		dayMap := vs.X[d.ID]
		for _, day := range cal.Days {
			for post, id := range dayMap[day.Index] {
				role := domain.ResolvePostRole(post)
				if d.Category == domain.CategoryRegistrar && day.IsWeekend() && post != domain.StandbyOncallPost {
					m.AddObjectiveTerm(id, cfg.LambdaRegWeekend)
				}
				switch role {
				case domain.RoleWard:
					if d.Category == domain.CategoryJunior {
						m.AddObjectiveTerm(id, cfg.LambdaJuniorWard)
					}
				case domain.RoleED:
					if d.Category == domain.CategorySenior || d.Category == domain.CategoryRegistrar {
						m.AddObjectiveTerm(id, cfg.LambdaED)
					}
				}
			}
		}
	}
}

// buildMinimumOne: Σ x[d,·,·] + min_one_slack[d] ≥ 1 for every non-floater.
func buildMinimumOne(m *Model, vs *VariableSet, doctors []domain.Doctor, cfg contract.SolverConfig) {
	for _, d := range doctors {
		slack, ok := vs.MinOneSlack[d.ID]
		if !ok {
			continue
		}
		expr := Expr{}
		for _, posts := range vs.X[d.ID] {
			for _, id := range posts {
				expr = expr.Add(id, 1)
			}
		}
		expr = expr.Add(slack, 1)
		m.AddConstraint(Constraint{Name: "min_one", Expr: expr, Op: GE, RHS: 1})
		m.AddObjectiveTerm(slack, cfg.LambdaMinOne)
	}
}

// buildGapReward emits the 3-day gap reward (spec.md §4.5 3-day gap
// reward): a negative-coefficient objective term that rewards a doctor
// for having on-call assignments spaced at least 3 days apart.
func buildGapReward(m *Model, vs *VariableSet, cal *calendar.Calendar, cat *catalogue.Catalogue, doctors []domain.Doctor, cfg contract.SolverConfig) {
	for _, d := range doctors {
		gm := vs.ZGap[d.ID]
		if gm == nil {
			continue
		}
		for i := 0; i+2 < len(cal.Days); i++ {
			s, s2 := cal.Days[i], cal.Days[i+2]
			expr := Expr{}
			n := onCallTerms(vs, cat, d.ID, s, false, &expr)
			n += onCallTerms(vs, cat, d.ID, s2, false, &expr)
			if n == 0 {
				continue
			}
			z := gm[s.Index]
			e := expr
			e = e.Add(z, -1)
			m.AddConstraint(Constraint{Name: "gap_reward", Expr: e, Op: LE, RHS: 1})
			m.AddObjectiveTerm(z, -cfg.LambdaGap)
		}
	}
}

// buildUnitOverCap: Σ_{d∈u,t} x[d,s,t] − over ≤ cap on every non-clinic
// day for the unit (spec.md §4.5 Unit over-coverage soft cap).
func buildUnitOverCap(m *Model, vs *VariableSet, cal *calendar.Calendar, doctorsByUnit map[string][]domain.Doctor, units []domain.Unit, cfg contract.SolverConfig) {
	for _, u := range units {
		dm := vs.UnitOver[u.ID]
		if dm == nil {
			continue
		}
		cap := float64(unitOverCap(u, doctorsByUnit[u.ID]))
		for _, day := range cal.Days {
			over, ok := dm[day.Index]
			if !ok {
				continue
			}
			expr := Expr{}
			for _, d := range doctorsByUnit[u.ID] {
				for _, id := range vs.X[d.ID][day.Index] {
					expr = expr.Add(id, 1)
				}
			}
			expr = expr.Add(over, -1)
			m.AddConstraint(Constraint{Name: "unit_over_cap", Expr: expr, Op: LE, RHS: cap})
			m.AddObjectiveTerm(over, cfg.LambdaUnitOver)
		}
	}
}

// buildWorkloadAwareStandby computes the per-doctor multiplier (spec.md
// §4.5 Workload-aware Standby penalty) and applies it to every
// materialised Standby Oncall variable of that doctor.
func buildWorkloadAwareStandby(m *Model, vs *VariableSet, doctors []domain.Doctor, cfg contract.SolverConfig) {
	for _, d := range doctors {
		mult := workloadMultiplier(d, cfg)
		for _, posts := range vs.X[d.ID] {
			id, ok := posts[domain.StandbyOncallPost]
			if !ok {
				continue
			}
			m.AddObjectiveTerm(id, mult)
		}
	}
}

func workloadMultiplier(d domain.Doctor, cfg contract.SolverConfig) float64 {
	w := d.Workload
	mult := cfg.LambdaStandby
	switch {
	case w.StandbyCount12m > 0:
		mult += 5000
	case w.StandbyCount3m > 0:
		mult += 2000
	case w.DaysSinceLastStandby < 365:
		bonus := float64(365-w.DaysSinceLastStandby) * 5
		if bonus < 0 {
			bonus = 0
		}
		mult += bonus
	case w.DaysSinceLastStandby > 365:
		reduction := float64(w.DaysSinceLastStandby-365) / 5
		if reduction > 200 {
			reduction = 200
		}
		mult -= reduction
		if mult < 1 {
			mult = 1
		}
	}
	return mult
}

func lookupX(vs *VariableSet, doctorID string, dayIndex int, post string) (string, bool) {
	dayMap, ok := vs.X[doctorID]
	if !ok {
		return "", false
	}
	posts, ok := dayMap[dayIndex]
	if !ok {
		return "", false
	}
	id, ok := posts[post]
	return id, ok
}
