package main

import "fmt"

// Catalog maps a canonical intent category and a language code to the
// localized fulfillment text. It is built once at startup, validated for
// completeness, and never mutated afterwards, so concurrent lookups need no
// synchronization and can never miss.
type Catalog map[IntentCategory]map[string]string

func DefaultCatalog() Catalog {
	return Catalog{
		IntentBookAppointment: {
			"en": "Your appointment has been booked successfully! The doctor will see you soon. Is there anything else I can help you with?",
			"hi": "आपकी अपॉइंटमेंट बुक हो गई है! डॉक्टर आपसे जल्द ही मिलेंगे। क्या आपको कोई और सहायता चाहिए?",
			"te": "మీ అపాయింట్మెంట్ బుకైంది! డాక్టర్ త్వరలో మిమ్మల్ని కలుస్తారు. మీకు ఇంకా ఏదైనా సహాయం కావాలా?",
		},
		IntentCancelAppointment: {
			"en": "Your appointment has been cancelled successfully. Please let me know if you'd like to book another appointment.",
			"hi": "आपकी अपॉइंटमेंट रद्द कर दी गई है। यदि आपको दोबारा अपॉइंटमेंट बुक करनी हो तो कृपया बताएं।",
			"te": "మీ అపాయింట్మెంట్ రద్దు చేయబడింది. మీకు మళ్లీ అపాయింట్మెంట్ బుక్ చేయాలంటే దయచేసి చెప్పండి.",
		},
		IntentListMedicines: {
			"en": "For medicine information, please consult with a doctor. I can help you book an appointment with a specialist.",
			"hi": "दवा की जानकारी के लिए कृपया डॉक्टर से परामर्श करें। मैं आपको डॉक्टर से अपॉइंटमेंट बुक करने में मदद कर सकता हूं।",
			"te": "మందుల కోసం దయచేసి డాక్టర్‌ను సంప్రదించండి. నేను మీకు డాక్టర్‌తో అపాయింట్మెంట్ బుక్ చేయడంలో సహాయం చేయగలను.",
		},
		IntentConditionExplainer: {
			"en": "Asthma is a condition that affects breathing and airways. For accurate information about your specific condition, please consult with a doctor.",
			"hi": "अस्थमा एक ऐसी स्थिति है जो सांस लेने को प्रभावित करती है। सटीक जानकारी के लिए कृपया डॉक्टर से मिलें।",
			"te": "ఆస్థమా అనేది శ్వాసపై ప్రభావం చూపించే పరిస్థితి. ఖచ్చితమైన సమాచారం కోసం దయచేసి డాక్టర్‌ను కలవండి.",
		},
		IntentFAQ: {
			"en": "You can cancel appointments by saying 'Cancel appointment'. For other help, just say 'help' or ask me anything about MedReserve services.",
			"hi": "आप 'अपॉइंटमेंट रद्द करें' कहकर अपॉइंटमेंट रद्द कर सकते हैं। अन्य सहायता के लिए 'मदद' कहें।",
			"te": "మీరు 'అపాయింట్మెంట్ రద్దు చేయండి' అని చెప్పి అపాయింట్మెంట్ రద్దు చేయవచ్చు. ఇతర సహాయం కోసం 'సహాయం' అని చెప్పండి.",
		},
		IntentDefault: {
			"en": "I'm here to help you with MedReserve services! I can assist with appointment booking, cancellations, and general health information.",
			"hi": "मुझे खुशी होगी आपकी मदद करने में! मैं अपॉइंटमेंट बुकिंग, रद्दीकरण, और स्वास्थ्य जानकारी में सहायता कर सकता हूं।",
			"te": "మీకు సహాయం చేయడంలో నేను సంతోషిస్తాను! నేను అపాయింట్మెంట్ బుకింగ్, రద్దు మరియు ఆరోగ్య సమాచారంలో సహాయం చేయగలను.",
		},
	}
}

// Validate checks that every category defines a non-empty response for every
// supported language. It runs once before the server starts serving traffic.
func (c Catalog) Validate(languages []string) error {
	for _, category := range intentCategories {
		byLang, ok := c[category]
		if !ok {
			return fmt.Errorf("catalog is missing category %s", category)
		}
		for _, lang := range languages {
			if byLang[lang] == "" {
				return fmt.Errorf("catalog is missing a %s response for language %q", category, lang)
			}
		}
	}
	return nil
}
