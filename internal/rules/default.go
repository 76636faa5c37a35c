package rules

import "fsquiz/internal/category"

// Default returns the built-in FS configuration: the ordered rule-code
// table and keyword lists. Table order is the tie-break, so EV and T11 must
// stay ahead of the bare T prefix.
func Default() category.Config {
	return category.Config{
		FilterPolicy: category.FilterWildcard,
		Rules: []category.RuleEntry{
			{Prefix: "EV", Category: category.Electrical},
			{Prefix: "T11", Category: category.Electrical},
			{Prefix: "CV", Category: category.Mechanical},
			{Prefix: "T", Category: category.Mechanical},
			{Prefix: "IN", Category: category.Mechanical},
			{Prefix: "A", Category: category.TeamManager},
			{Prefix: "S", Category: category.Finance},
			{Prefix: "D", Category: category.Finance},
		},
		Keywords: []category.KeywordSet{
			{
				Category: category.TeamManager,
				Words: []string{
					"deadline", "document", "submission", "registration",
					"registered", "deregistered", "participant", "licence",
					"license", "briefing", "conduct", "pit", "eligibility",
					"protest", "captain", "team",
				},
				Phrases: []string{
					"rules of conduct", "work area", "hot area", "practice area",
				},
			},
			{
				Category: category.Electrical,
				Words: []string{
					"accumulator", "battery", "cell", "cells", "inverter",
					"motor", "isolation", "insulation", "tsal", "imd", "ams",
					"hv", "tsvs", "lvs", "glv", "shutdown", "airs", "precharge",
					"bspd", "charger", "voltage", "current", "ohm", "amp",
					"pcb", "connector", "hvdc",
				},
				Phrases: []string{"tractive system", "high voltage"},
			},
			{
				Category: category.Finance,
				Words: []string{
					"business", "cost", "bom", "static", "dynamic", "skidpad",
					"acceleration", "autocross", "endurance", "efficiency",
					"points", "scoring", "penalties", "penalty", "stint",
					"weather", "cone", "dnf", "manufacturing", "presentation",
				},
				Phrases: []string{
					"design event", "design report", "business plan",
					"cost report", "driver change", "lap time", "lap times",
				},
			},
			{
				Category: category.Mechanical,
				Words: []string{
					"chassis", "monocoque", "aero", "wing", "suspension",
					"damper", "upright", "steering", "rack", "toe", "camber",
					"brake", "caliper", "rotor", "master", "seat", "harness",
					"restraint", "roll", "impact", "firewall", "wheel", "tire",
					"tyre", "fuel", "combustion", "exhaust", "throttle",
					"noise", "drivetrain", "gear", "gearbox", "differential",
					"chain", "belt", "powertrain", "tilt", "weigh", "fastener",
					"bolt", "stress", "strain", "modulus", "beam", "bending",
					"moment", "shear", "torque", "spring", "bearing", "weld",
					"buckling", "hoop", "frame", "tube",
				},
			},
		},
	}
}
