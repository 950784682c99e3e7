package domain

import (
	"context"
	"log/slog"

	"github.com/kitsunebi/disaster-info-api/internal/lang"
)

// RawWarning is one warning entry as it appears in a JMA bulletin, before
// filtering and localization.
type RawWarning struct {
	AreaName string
	Code     string
	Status   string
}

// WarningBulletin is the decoded warning feed for one prefecture.
type WarningBulletin struct {
	ReportDatetime string
	Warnings       []RawWarning
}

// warningStatusAnnounced marks a warning as currently in force.
const warningStatusAnnounced = "発表"

// BuildAlerts turns a bulletin into localized alerts. Warnings that are
// not in force or carry unknown codes are dropped. Languages covered by
// the static tables resolve without the localizer; everything else goes
// through AI generation, falling back to the static English rendering
// when generation fails.
func BuildAlerts(ctx context.Context, loc Localizer, bulletin WarningBulletin, areaCode, target string, logger *slog.Logger) []Alert {
	var alerts []Alert
	for _, w := range bulletin.Warnings {
		if w.Status != warningStatusAnnounced || !lang.KnownWarningCode(w.Code) {
			continue
		}
		severity := Severity(lang.WarningSeverity(w.Code))
		titleJA := lang.WarningName(w.Code, "ja")

		alert := Alert{
			ID:          NewAlertID(areaCode, w.Code),
			Type:        severity.AlertType(),
			Title:       titleJA,
			Description: lang.WarningDescription(w.AreaName, titleJA, "ja"),
			Area:        w.AreaName,
			IssuedAt:    bulletin.ReportDatetime,
			Severity:    severity,
		}

		switch {
		case target == "ja":
			// Japanese needs no translated fields.
		case lang.StaticallyCovered(target):
			name := lang.WarningName(w.Code, target)
			area := lang.WarningArea(w.AreaName, target)
			alert.TitleTranslated = name
			alert.DescriptionTranslated = lang.WarningDescription(area, name, target)
			alert.Area = area
		default:
			localizeAlertWithAI(ctx, loc, &alert, w, target, severity, logger)
		}

		alerts = append(alerts, alert)
	}
	return alerts
}

// localizeAlertWithAI fills the translated fields for languages outside
// the static tables.
func localizeAlertWithAI(ctx context.Context, loc Localizer, alert *Alert, w RawWarning, target string, severity Severity, logger *slog.Logger) {
	if loc == nil {
		alert.TitleTranslated = lang.WarningName(w.Code, "en")
		alert.DescriptionTranslated = lang.WarningDescription(w.AreaName, alert.TitleTranslated, "en")
		return
	}

	generated, err := loc.GenerateWarningText(ctx, alert.Title, target, w.AreaName, severity)
	if err != nil {
		logger.Warn("warning text generation failed, using English",
			"code", w.Code,
			"area", w.AreaName,
			"lang", target,
			"error", err,
		)
		name := lang.WarningName(w.Code, "en")
		alert.TitleTranslated = name
		alert.DescriptionTranslated = lang.WarningDescription(w.AreaName, name, "en")
		return
	}

	alert.TitleTranslated = generated.Name
	alert.DescriptionTranslated = generated.Description
	alert.Action = generated.Action
	alert.Area = loc.TranslateLocation(ctx, w.AreaName, target)
}

// FilterSpecial keeps only emergency-class alerts.
func FilterSpecial(alerts []Alert) []Alert {
	var out []Alert
	for _, a := range alerts {
		if a.Severity == SeverityExtreme {
			out = append(out, a)
		}
	}
	return out
}
