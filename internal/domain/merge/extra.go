package merge

// dropped lists biographical and administrative columns that never reach
// the snapshot. Names absent from the extracts are ignored.
var dropped = map[string]struct{}{} //nolint:gochecknoglobals // fixed table

func init() { //nolint:gochecknoinits // builds the lookup set once
	for _, c := range []string{
		"nick_name", "city_of_birth_id", "nation_id", "second_nation_id", "last_league_id",
		"last_team_id", "last_organization_id", "language_ids0", "language_ids1", "uniform_number",
		"experience", "person_type", "historical_id", "historical_team_id", "best_contract_offer_id",
		"injury_is_injured", "injury_dtd_injury", "injury_career_ending", "injury_dl_left",
		"injury_dl_playoff_round", "injury_left", "dtd_injury_effect", "dtd_injury_effect_hit",
		"dtd_injury_effect_throw", "dtd_injury_effect_run", "injury_id", "injury_id2",
		"injury_dtd_injury2", "injury_left2", "dtd_injury_effect2", "dtd_injury_effect_hit2",
		"dtd_injury_effect_throw2", "dtd_injury_effect_run2", "prone_overall", "prone_leg",
		"prone_back", "prone_arm", "fatigue_pitches0", "fatigue_pitches1", "fatigue_pitches2",
		"fatigue_pitches3", "fatigue_pitches4", "fatigue_pitches5", "fatigue_points",
		"fatigue_played_today", "college", "school",
		"commit_school", "hidden", "turned_coach", "hall_of_fame", "rust", "inducted",
		"strategy_override_team", "strategy_stealing", "strategy_running", "strategy_bunt_for_hit",
		"strategy_sac_bunt", "strategy_hit_run", "strategy_hook_start", "strategy_hook_relief",
		"strategy_pitch_count", "strategy_pitch_around", "strategy_never_pinch_hit",
		"strategy_defensive_sub", "strategy_dtd_sit_min", "strategy_dtd_allow_ph", "local_pop",
		"national_pop", "draft_protected", "morale", "morale_player_performance",
		"morale_team_performance", "morale_team_transactions", "expectation", "morale_player_role",
		"on_loan", "loan_league_id", "loan_team_id",
		"acquired", "acquired_date", "draft_year", "draft_round", "draft_supplemental", "draft_pick",
		"draft_overall_pick", "draft_eligible", "hsc_status", "redshirt", "picked_in_draft",
		"draft_league_id", "draft_team_id", "morale_mod", "morale_team_chemistry",
		"scouting_coach_id", "scouting_team_id",
	} {
		dropped[c] = struct{}{}
	}
}

// extraLayout decides which passthrough columns survive and where each
// source's values land.
type extraLayout struct {
	names      []string
	fromPlayer []int // index into the player row, per kept column, or -1
	fromScout  []int // index into the scouted row, per kept column, or -1
}

// newExtraLayout keeps player columns first, then scouted columns not
// already seen; dropped names are left out.
func newExtraLayout(playerCols, scoutedCols []string) extraLayout {
	var l extraLayout
	seen := make(map[string]struct{}, len(playerCols)+len(scoutedCols))
	add := func(name string, pi, si int) {
		if _, drop := dropped[name]; drop {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		l.names = append(l.names, name)
		l.fromPlayer = append(l.fromPlayer, pi)
		l.fromScout = append(l.fromScout, si)
	}
	for i, c := range playerCols {
		add(c, i, -1)
	}
	for i, c := range scoutedCols {
		add(c, -1, i)
	}
	return l
}

// values lays out one player's passthrough values. A scouted column is
// blank for a player without a scouted row.
func (l extraLayout) values(player, scouted []string) []string {
	out := make([]string, len(l.names))
	for i := range l.names {
		switch {
		case l.fromPlayer[i] >= 0 && l.fromPlayer[i] < len(player):
			out[i] = player[l.fromPlayer[i]]
		case l.fromScout[i] >= 0 && l.fromScout[i] < len(scouted):
			out[i] = scouted[l.fromScout[i]]
		}
	}
	return out
}
