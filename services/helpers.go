package services

import (
	"fmt"

	"github.com/Dosada05/tournament-league/models"
	"github.com/Dosada05/tournament-league/standings"
)

const (
	unknownName   = "Unknown"
	missingMember = "N/A"
)

type TournamentView struct {
	RoundCount         int                       `json:"roundCount"`
	Mode               models.Mode               `json:"mode"`
	TeamAssignmentMode models.TeamAssignmentMode `json:"teamAssignmentMode"`
	MatchFormat        models.MatchFormat        `json:"matchFormat"`
	Created            bool                      `json:"created"`
	CompetitorCount    int                       `json:"competitorCount"`
	TeamCount          int                       `json:"teamCount"`
	PreviewMatchCount  int                       `json:"previewMatchCount"`
	Progress           models.Progress           `json:"progress"`
}

type TeamView struct {
	models.Team
	Label       string `json:"label"`
	MemberAName string `json:"memberAName"`
	MemberBName string `json:"memberBName"`
}

type SideView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MatchView struct {
	ID        int         `json:"id"`
	Round     int         `json:"round"`
	Mode      models.Mode `json:"mode"`
	Side1     SideView    `json:"side1"`
	Side2     SideView    `json:"side2"`
	Score1    *int        `json:"score1,omitempty"`
	Score2    *int        `json:"score2,omitempty"`
	Completed bool        `json:"completed"`
}

type StandingView struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	models.Standing
	WinRate         float64 `json:"winRate"`
	GoalsPerGame    float64 `json:"goalsPerGame"`
	ConcededPerGame float64 `json:"concededPerGame"`
}

func newTournamentView(snapshot models.Snapshot) TournamentView {
	cfg := snapshot.Config
	competitors := len(snapshot.Roster)
	if cfg.Created {
		competitors = len(cfg.Roster)
	}
	return TournamentView{
		RoundCount:         cfg.RoundCount,
		Mode:               cfg.Mode,
		TeamAssignmentMode: cfg.TeamAssignmentMode,
		MatchFormat:        cfg.MatchFormat,
		Created:            cfg.Created,
		CompetitorCount:    competitors,
		TeamCount:          len(cfg.Teams),
		PreviewMatchCount:  previewMatchCount(snapshot),
		Progress:           models.NewProgress(cfg.Matches),
	}
}

// nameIndex resolves ids to display names. After creation it reads the frozen roster,
// before that the live registrations. Misses never fail.
type nameIndex struct {
	competitors map[string]models.Competitor
	teams       map[string]models.Team
}

func newNameIndex(snapshot models.Snapshot) nameIndex {
	roster := snapshot.Roster
	if snapshot.Config.Created {
		roster = snapshot.Config.Roster
	}
	idx := nameIndex{
		competitors: make(map[string]models.Competitor, len(roster)),
		teams:       make(map[string]models.Team, len(snapshot.Config.Teams)),
	}
	for _, c := range roster {
		idx.competitors[c.ID] = c
	}
	for _, t := range snapshot.Config.Teams {
		idx.teams[t.ID] = t
	}
	return idx
}

func (n nameIndex) competitorName(id string) string {
	if c, ok := n.competitors[id]; ok {
		return c.DisplayName
	}
	return unknownName
}

func (n nameIndex) memberName(id string) string {
	if c, ok := n.competitors[id]; ok {
		return c.DisplayName
	}
	return missingMember
}

// teamLabel renders "Name (A + B)".
func (n nameIndex) teamLabel(id string) string {
	t, ok := n.teams[id]
	if !ok {
		return unknownName
	}
	return fmt.Sprintf("%s (%s + %s)", t.Name, n.memberName(t.MemberA), n.memberName(t.MemberB))
}

func (n nameIndex) entityName(mode models.Mode, id string) string {
	if mode == models.ModeDoubles {
		return n.teamLabel(id)
	}
	return n.competitorName(id)
}

func (n nameIndex) teamView(t models.Team) TeamView {
	return TeamView{
		Team:        t,
		Label:       fmt.Sprintf("%s (%s + %s)", t.Name, n.memberName(t.MemberA), n.memberName(t.MemberB)),
		MemberAName: n.memberName(t.MemberA),
		MemberBName: n.memberName(t.MemberB),
	}
}

func (n nameIndex) matchView(m models.Match) MatchView {
	view := MatchView{ID: m.ID, Round: m.Round, Completed: m.Completed}
	if m.Sides != nil {
		view.Mode = m.Sides.Mode()
		side1, side2 := m.Sides.IDs()
		view.Side1 = SideView{ID: side1, Name: n.entityName(view.Mode, side1)}
		view.Side2 = SideView{ID: side2, Name: n.entityName(view.Mode, side2)}
	}
	if m.Result != nil {
		score1, score2 := m.Result.Score1, m.Result.Score2
		view.Score1, view.Score2 = &score1, &score2
	}
	return view
}

func newTeamViews(teams []models.Team, names nameIndex) []TeamView {
	views := make([]TeamView, len(teams))
	for i, t := range teams {
		views[i] = names.teamView(t)
	}
	return views
}

// newStandingViews ranks the created tournament. Before creation the table is empty.
func newStandingViews(snapshot models.Snapshot, names nameIndex) []StandingView {
	cfg := snapshot.Config
	if !cfg.Created {
		return []StandingView{}
	}
	table := standings.Compute(cfg.Mode, cfg.EntityIDs(), cfg.Matches)
	views := make([]StandingView, len(table))
	for i, st := range table {
		views[i] = StandingView{
			Position:        i + 1,
			Name:            names.entityName(cfg.Mode, st.ID),
			Standing:        st,
			WinRate:         st.WinRate(),
			GoalsPerGame:    st.GoalsPerGame(),
			ConcededPerGame: st.ConcededPerGame(),
		}
	}
	return views
}
