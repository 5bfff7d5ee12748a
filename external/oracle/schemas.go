package oracle

import "google.golang.org/genai"

// Response schemas mirror the JSON shapes of the internal types, so
// responses unmarshal directly into them.

var questionListSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

var feedbackSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":           {Type: genai.TypeInteger, Description: "A numerical score from 0-100 for the answer, based on a strict evaluation."},
		"responseQuality": {Type: genai.TypeInteger, Description: "A score from 0-100 representing the quality of this specific answer."},
		"evaluation": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"clarity":    {Type: genai.TypeString, Description: "Brief, one-sentence feedback on clarity."},
				"relevance":  {Type: genai.TypeString, Description: "Brief, one-sentence feedback on relevance."},
				"structure":  {Type: genai.TypeString, Description: "Brief, one-sentence feedback on structure (e.g., STAR method)."},
				"confidence": {Type: genai.TypeString, Description: "Brief, one-sentence feedback on confidence inferred from the text."},
			},
			Required: []string{"clarity", "relevance", "structure", "confidence"},
		},
		"grammarCorrection": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"hasErrors":   {Type: genai.TypeBoolean, Description: "True if grammatical errors or significant filler words were found."},
				"explanation": {Type: genai.TypeString, Description: "A brief explanation of any grammar mistake. Empty string if no errors."},
			},
			Required: []string{"hasErrors", "explanation"},
		},
		"professionalRewrite": {Type: genai.TypeString, Description: "A rewritten, strong, and professional version of the candidate's response."},
		"tips":                {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "1-2 actionable tips for improvement."},
		"spokenSummary":       {Type: genai.TypeString, Description: "A friendly, conversational response summarizing the feedback. This text is spoken to the candidate."},
		"wordCount":           {Type: genai.TypeInteger, Description: "The total number of words in the candidate's answer."},
		"fillerWords":         {Type: genai.TypeInteger, Description: "The count of filler words like 'um', 'uh', 'like', 'you know', 'so'."},
		"hasExample":          {Type: genai.TypeBoolean, Description: "True if the candidate used a concrete example."},
	},
	Required: []string{"score", "responseQuality", "evaluation", "grammarCorrection",
		"professionalRewrite", "tips", "spokenSummary", "wordCount", "fillerWords", "hasExample"},
}

var summarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"overallSummary":                    {Type: genai.TypeString, Description: "A friendly, 2-3 sentence summary of the overall performance."},
		"actionableTips":                    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "3-5 actionable tips for improvement."},
		"encouragement":                     {Type: genai.TypeString, Description: "A final, encouraging sentence."},
		"simulatedFacialExpressionAnalysis": {Type: genai.TypeString, Description: "A simulated, one-sentence analysis of facial expressions based on the text responses."},
		"simulatedBodyLanguageAnalysis":     {Type: genai.TypeString, Description: "A simulated, one-sentence analysis of body language based on the text responses."},
		"simulatedAudioAnalysis":            {Type: genai.TypeString, Description: "A simulated, one-sentence analysis of vocal tone and pace based on the text responses."},
	},
	Required: []string{"overallSummary", "actionableTips", "encouragement",
		"simulatedFacialExpressionAnalysis", "simulatedBodyLanguageAnalysis", "simulatedAudioAnalysis"},
}

var resumeSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":    {Type: genai.TypeString},
		"email":   {Type: genai.TypeString},
		"phone":   {Type: genai.TypeString},
		"summary": {Type: genai.TypeString, Description: "A professional summary of 2-4 sentences."},
		"skills":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"experience": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"jobTitle":         {Type: genai.TypeString},
					"company":          {Type: genai.TypeString},
					"duration":         {Type: genai.TypeString, Description: "e.g., 'Jan 2020 - Present'"},
					"responsibilities": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
				},
				Required: []string{"jobTitle", "company", "duration", "responsibilities"},
			},
		},
		"education": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"degree":      {Type: genai.TypeString},
					"institution": {Type: genai.TypeString},
					"year":        {Type: genai.TypeString, Description: "e.g., 'Graduated May 2018'"},
				},
				Required: []string{"degree", "institution", "year"},
			},
		},
	},
	Required: []string{"name", "email", "phone", "summary", "skills", "experience", "education"},
}

var roadmapStepSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString},
		"description": {Type: genai.TypeString},
		"duration":    {Type: genai.TypeString},
		"resources":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"title", "description", "duration", "resources"},
}

var roadmapSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"targetRole":    {Type: genai.TypeString},
		"skillGaps":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"shortTermPlan": {Type: genai.TypeArray, Items: roadmapStepSchema},
		"longTermPlan":  {Type: genai.TypeArray, Items: roadmapStepSchema},
	},
	Required: []string{"targetRole", "skillGaps", "shortTermPlan", "longTermPlan"},
}
