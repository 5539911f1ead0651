package main

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

// IntentCategory is the closed set of canonical intents this service answers.
type IntentCategory string

const (
	IntentBookAppointment    IntentCategory = "BookAppointment"
	IntentCancelAppointment  IntentCategory = "CancelAppointment"
	IntentListMedicines      IntentCategory = "ListMedicines"
	IntentConditionExplainer IntentCategory = "ConditionExplainer"
	IntentFAQ                IntentCategory = "FAQ"
	IntentDefault            IntentCategory = "Default"
)

var intentCategories = []IntentCategory{
	IntentBookAppointment,
	IntentCancelAppointment,
	IntentListMedicines,
	IntentConditionExplainer,
	IntentFAQ,
	IntentDefault,
}

// Display names the external agent is known to send, keyed lowercase.
var intentSynonyms = map[string]IntentCategory{
	"bookappointment":     IntentBookAppointment,
	"book.appointment":    IntentBookAppointment,
	"appointment.book":    IntentBookAppointment,
	"cancelappointment":   IntentCancelAppointment,
	"cancel.appointment":  IntentCancelAppointment,
	"appointment.cancel":  IntentCancelAppointment,
	"listmedicines":       IntentListMedicines,
	"list.medicines":      IntentListMedicines,
	"medicines.list":      IntentListMedicines,
	"medicine.info":       IntentListMedicines,
	"conditionexplainer":  IntentConditionExplainer,
	"condition.explainer": IntentConditionExplainer,
	"health.condition":    IntentConditionExplainer,
	"disease.info":        IntentConditionExplainer,
	"faq":                 IntentFAQ,
	"help":                IntentFAQ,
	"support":             IntentFAQ,
}

// CanonicalizeIntent maps a raw intent display name to its category. Unknown
// names degrade to Default instead of erroring: the agent may ship intents
// this service does not recognize yet, and a conversational turn must still
// get an answer.
func CanonicalizeIntent(rawName string) IntentCategory {
	if category, ok := intentSynonyms[strings.ToLower(rawName)]; ok {
		return category
	}
	return IntentDefault
}

// Dispatcher turns a decoded webhook request into a localized fulfillment
// response. It is stateless after construction and safe for concurrent use.
type Dispatcher struct {
	config  *Config
	catalog Catalog
	logger  *zap.Logger
}

func NewDispatcher(cfg *Config, catalog Catalog, logger *zap.Logger) (*Dispatcher, error) {
	if err := catalog.Validate(cfg.SupportedLanguages); err != nil {
		return nil, err
	}

	return &Dispatcher{
		config:  cfg,
		catalog: catalog,
		logger:  logger,
	}, nil
}

// ResolveLanguage normalizes a raw language code to a supported one. The
// region tag is stripped ("en-US" -> "en") and anything outside the
// supported set falls back to the default language. Total: the result is
// always a member of the supported set.
func (d *Dispatcher) ResolveLanguage(rawCode string) string {
	if rawCode == "" {
		return d.config.DefaultLanguage
	}

	code, _, _ := strings.Cut(rawCode, "-")
	code = strings.ToLower(code)

	if d.config.IsSupported(code) {
		return code
	}

	d.logger.Warn("Unsupported language, falling back to default",
		zap.String("language", rawCode),
		zap.String("default", d.config.DefaultLanguage))

	return d.config.DefaultLanguage
}

// Respond resolves the raw intent name and language code and returns the
// localized fulfillment text along with the resolved values. The catalog
// lookup cannot miss: completeness over the supported set is validated in
// NewDispatcher.
func (d *Dispatcher) Respond(rawIntent, rawLanguage string) (IntentCategory, string, string) {
	language := d.ResolveLanguage(rawLanguage)
	category := CanonicalizeIntent(rawIntent)

	d.logger.Info("Dispatching intent",
		zap.String("intent", string(category)),
		zap.String("language", language))

	return category, language, d.catalog[category][language]
}

// Dispatch handles one structurally valid webhook request. Empty or missing
// fields are not errors; they resolve to the defaults.
func (d *Dispatcher) Dispatch(req *WebhookRequest) *WebhookResponse {
	var rawIntent, rawLanguage string
	if qr := req.QueryResult; qr != nil {
		rawLanguage = qr.LanguageCode
		if qr.Intent != nil {
			rawIntent = qr.Intent.DisplayName
		}
	}

	category, language, text := d.Respond(rawIntent, rawLanguage)

	resp := &WebhookResponse{FulfillmentText: text}
	if d.config.DebugMode {
		resp.DebugInfo = &DebugInfo{
			DetectedIntent:   string(category),
			DetectedLanguage: language,
			Timestamp:        time.Now().UnixMilli(),
		}
	}

	return resp
}
