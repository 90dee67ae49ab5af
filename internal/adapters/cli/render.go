package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"paradereg/internal/domain/entities"
)

func (a *App) renderList(w io.Writer, participants []entities.Participant) error {
	if len(participants) == 0 {
		_, err := fmt.Fprintln(w, a.t("list.empty", nil))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, a.t("list.header", nil))
	for _, p := range participants {
		active := a.t("list.inactive", nil)
		if p.Active {
			active = a.t("list.active", nil)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.FullName(),
			p.Email,
			p.Phone,
			p.Age,
			a.typeLabel(p.Type),
			a.categoryLabel(p.Category),
			p.FormattedRegistration(a.loc),
			active,
		)
	}
	return tw.Flush()
}

func (a *App) renderStats(w io.Writer, s entities.Statistics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n\n", a.t("stats.title", nil))
	fmt.Fprintf(tw, "%s:\t%d\n", a.t("stats.total", nil), s.Total)
	fmt.Fprintf(tw, "%s:\t%d\n", a.t("stats.active", nil), s.Active)
	fmt.Fprintf(tw, "%s:\t%s\n", a.t("stats.average_age", nil), strconv.FormatFloat(s.AverageAge, 'f', 2, 64))
	fmt.Fprintf(tw, "%s:\t%d\n", a.t("stats.recent", nil), s.Recent)

	fmt.Fprintf(tw, "\n%s\n", a.t("stats.by_type", nil))
	for _, tc := range s.ByType {
		fmt.Fprintf(tw, "  %s\t%d\n", a.typeLabel(tc.Type), tc.Count)
	}
	fmt.Fprintf(tw, "\n%s\n", a.t("stats.by_category", nil))
	for _, cc := range s.ByCategory {
		fmt.Fprintf(tw, "  %s (%s)\t%d\n", a.categoryLabel(cc.Category), cc.Category.Color(), cc.Count)
	}
	fmt.Fprintf(tw, "\n%s\n", a.t("stats.by_age", nil))
	for _, bc := range s.AgeBrackets {
		fmt.Fprintf(tw, "  %s\t%d\n", bc.Bracket, bc.Count)
	}
	return tw.Flush()
}

// renderFeedback prints the pending message or error of the view state.
func (a *App) renderFeedback(w io.Writer) {
	st := a.view.State()
	switch {
	case st.Error != "":
		fmt.Fprintln(w, "✗ "+st.Error)
	case st.Message != "":
		fmt.Fprintln(w, "✓ "+st.Message)
	}
}

func (a *App) typeLabel(t entities.ParticipantType) string {
	key := "type." + t.Code()
	if label := a.t(key, nil); label != key {
		return label
	}
	return t.Label()
}

func (a *App) categoryLabel(c entities.ParticipantCategory) string {
	key := "category." + c.Code()
	if label := a.t(key, nil); label != key {
		return label
	}
	return c.Label()
}

func (a *App) sortLabel(o entities.SortOption) string {
	key := "sort." + string(o)
	if label := a.t(key, nil); label != key {
		return label
	}
	return o.Label()
}
