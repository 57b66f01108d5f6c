package ui

import (
	"fmt"
	"strings"

	"morsel/internal/data"
	"morsel/internal/model"
	"morsel/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// DishDetailModel represents the dish detail screen.
type DishDetailModel struct {
	dish model.Dish
}

// NewDishDetailModel creates a new dish detail model.
func NewDishDetailModel(dish model.Dish) *DishDetailModel {
	return &DishDetailModel{dish: dish}
}

// View renders the dish detail.
func (m *DishDetailModel) View(width, height int) string {
	d := m.dish

	shortcuts := HelpDescStyle.Render("h back")
	header := lipgloss.NewStyle().
		Width(width - 4).
		Align(lipgloss.Right).
		Render(shortcuts)

	var sections []string

	var fields []string
	fields = append(fields, renderField("Name", d.Name))
	fields = append(fields, renderField("Country", fmt.Sprintf("%s %s (%s)", data.FlagEmoji(d.Country), d.CountryName, d.Country)))
	fields = append(fields, renderField("Cooked", util.FormatDate(d.DateCooked)))
	fields = append(fields, renderField("Rating", util.FormatRatingStars(d.Rating)+"  "+util.FormatRating(d.Rating)))
	fields = append(fields, renderField("Difficulty", string(d.Difficulty)))
	if d.TotalTime != "" {
		timing := d.TotalTime
		if d.PrepTime != "" && d.CookTime != "" {
			timing = fmt.Sprintf("%s (prep %s, cook %s)", d.TotalTime, d.PrepTime, d.CookTime)
		}
		fields = append(fields, renderField("Time", timing))
	}
	if d.Servings > 0 {
		fields = append(fields, renderField("Servings", fmt.Sprintf("%d", d.Servings)))
	}
	if len(d.Tags) > 0 {
		fields = append(fields, renderField("Tags", strings.Join(d.Tags, ", ")))
	}
	sections = append(sections, strings.Join(fields, "\n"))

	if d.RecipeDetails != "" {
		sections = append(sections, LabelStyle.Render("About:")+"\n"+
			NormalRowStyle.Width(width-12).Render(d.RecipeDetails))
	}

	if len(d.Ingredients) > 0 {
		var items []string
		for _, ing := range d.Ingredients {
			items = append(items, "  • "+ing)
		}
		sections = append(sections, LabelStyle.Render("Ingredients:")+"\n"+
			NormalRowStyle.Render(strings.Join(items, "\n")))
	}

	if d.Recipe != "" {
		sections = append(sections, LabelStyle.Render("Steps:")+"\n"+
			NormalRowStyle.Width(width-12).Render(d.Recipe))
	}

	if d.Notes != "" {
		sections = append(sections, LabelStyle.Render("Notes:")+"\n"+
			NormalRowStyle.Width(width-12).Render(d.Notes))
	}

	var links []string
	links = append(links, renderField("Look it up", data.GoogleSearchURL(d.Name+" recipe")))
	for _, l := range d.SourceLinks {
		label := l.Type
		if label == "" {
			label = "source"
		}
		label = strings.ToUpper(label[:1]) + label[1:]
		links = append(links, renderField(label, l.URL))
	}
	if d.VideoURL != "" {
		links = append(links, renderField("Video", d.VideoURL))
	}
	sections = append(sections, strings.Join(links, "\n"))

	if len(d.Photos) > 0 {
		sections = append(sections, HelpDescStyle.Render(
			fmt.Sprintf("%d photos in %s", len(d.Photos), d.MainImage)))
	}

	info := PanelStyle.
		Width(width - 4).
		Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, info)
}
