package oracle

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/interprepai/interprep/internal/oracle"
)

func questionPrompt(req oracle.QuestionRequest) string {
	var experienceLines []string
	for _, exp := range req.Resume.Experience {
		experienceLines = append(experienceLines, fmt.Sprintf("- %s at %s (%s)", exp.JobTitle, exp.Company, exp.Duration))
	}
	experienceSummary := strings.Join(experienceLines, "\n")
	if experienceSummary == "" {
		experienceSummary = "No professional experience listed."
	}
	skills := "Not specified."
	if len(req.Resume.Skills) > 0 {
		skills = "[" + strings.Join(req.Resume.Skills, ", ") + "]"
	}
	summary := req.Resume.Summary
	if summary == "" {
		summary = "Not provided."
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an expert interviewer hiring for a %q position. You must generate %d challenging interview questions tailored to the candidate's background.

Candidate's Background:
- Role they are applying for: %q
- Key Skills: %s
- Professional Summary: %q
- Recent Experience:
%s
`, req.TargetRole, req.Count, req.TargetRole, skills, summary, experienceSummary)
	if req.LinkedInURL != "" {
		fmt.Fprintf(&b, "- LinkedIn Profile: %s\n", req.LinkedInURL)
	}
	fmt.Fprintf(&b, "\nInstructions:\n1. Generate exactly %d questions.\n", req.Count)
	if len(req.Resume.Experience) > 0 || len(req.Resume.Skills) > 0 {
		b.WriteString("2. Tailor at least 2-3 questions directly to the candidate's experience and skills.\n")
	} else {
		fmt.Fprintf(&b, "2. Since specific experience or skills are not listed, focus on hypothetical scenarios and general knowledge relevant to the %q role.\n", req.TargetRole)
	}
	b.WriteString(`3. The questions should be a mix of behavioral and role-specific challenges.
4. Ensure questions encourage STAR (Situation, Task, Action, Result) method responses.
5. Return ONLY a JSON array of strings. Do not include any other text or explanation.`)
	return b.String()
}

func assessmentQuestionPrompt(jobRole, interviewType, difficulty string, count int) string {
	return fmt.Sprintf(`You are an expert HR professional and hiring manager responsible for creating interview assessments.
Your task is to generate %d high-quality interview questions for a candidate applying for the role of %q.

The assessment details are as follows:
- Interview Type: %s
- Difficulty Level: %s

Instructions:
1. Generate exactly %d questions.
2. The questions must be appropriate for the specified interview type and difficulty.
3. For 'Technical' or 'Role-Specific' types, ensure the questions are relevant to the skills and responsibilities of a %q.
4. For 'Behavioral' types, the questions should probe for competencies relevant to a %q.
5. The questions should be clear, concise, and open-ended.
6. Return ONLY a JSON array of strings. Do not include any other text, markdown, or explanation.`,
		count, jobRole, interviewType, difficulty, count, jobRole, jobRole)
}

func feedbackPrompt(question, answer string) string {
	return fmt.Sprintf(`# Persona: Interview Simulation Coach
You are a friendly, insightful, and encouraging AI career coach conducting a mock interview. Your goal is to provide precise, personalized feedback to help the candidate improve.

# Task: Evaluate Interview Answer
You have just asked the candidate a question, and they have provided an answer. Analyze their answer and provide structured feedback in the specified JSON format.

# Evaluation Criteria
- Clarity: Is the response easy to understand and well-articulated?
- Relevance: Does the answer directly address the question?
- Confidence: Is the tone self-assured and composed? (Inferred from text)
- Structure: Is the response logically organized (e.g., using the STAR method)?
- Tone and Language: Is the tone professional, friendly, and workplace-appropriate?
- Example Usage: Are concrete examples, stories, or data used to support the answer?
- Grammar & Vocabulary: Assess for errors, filler words ('um', 'uh', 'like', 'so', 'you know'), and professional language.

# Feedback Rules
1. Score the answer strictly from 0-100 for overall performance, plus a separate responseQuality score.
2. Fill in the evaluation object with concise, one-sentence feedback for each category.
3. Identify grammar errors, count filler words, and provide a strong professional rewrite.
4. Write a short, conversational, encouraging spoken response (spokenSummary) that summarizes the key feedback. This is what will be spoken to the candidate.

# Input
- Question: %q
- Candidate's Answer: %q

# Output
Provide your analysis ONLY in the specified JSON format.`, question, answer)
}

func summaryPrompt(feedback []oracle.Feedback) string {
	type digest struct {
		Score           int               `json:"score"`
		Tips            []string          `json:"tips"`
		Evaluation      oracle.Evaluation `json:"evaluation"`
		ResponseQuality int               `json:"responseQuality"`
	}
	digests := make([]digest, 0, len(feedback))
	for _, f := range feedback {
		digests = append(digests, digest{
			Score:           f.Score,
			Tips:            f.Tips,
			Evaluation:      f.Evaluation,
			ResponseQuality: f.ResponseQuality,
		})
	}
	encoded, _ := json.Marshal(digests)

	return fmt.Sprintf(`# Persona: Interview Simulation Coach
You are a friendly, insightful, and encouraging AI career coach.

# Task: Summarize Interview Performance
The mock interview is complete. Provide a final summary based on the entire session's performance, using the provided feedback data.

# Summary Rules
1. Overall Summary: a friendly, 2-3 sentence summary mentioning both strengths and key areas for practice.
2. Actionable Tips: 3-5 concrete, actionable tips based on recurring patterns in the feedback.
3. Simulate Non-Verbal Analysis: based on the confidence and quality of the text responses, provide brief, hypothetical and encouraging analyses of facial expressions, body language, and vocal tone.
4. Encouragement: end with a final, positive, encouraging sentence.

# Input
- An array of all feedback given during the session: %s

# Output
Provide your summary ONLY in the specified JSON format.`, encoded)
}

func followUpPrompt(digest oracle.SessionDigest, question string) string {
	entries, _ := json.Marshal(digest.Entries)
	return fmt.Sprintf(`# Persona: Interview Simulation Coach
You are a friendly, insightful, and encouraging AI career coach having a follow-up conversation with a candidate right after their mock interview. Your tone is conversational and helpful.

# Context: Interview Data
- Job Role: %s
- Overall Score: %d%%
- Your Final Summary: %s
- Your Main Tips: %s
- Transcript Snippets & Feedback: %s

# Task: Answer the Candidate's Question
Provide a helpful, concise, and encouraging answer based primarily on the interview context provided. If the question is general, use the context to make your answer specific to their performance. Do not make up new feedback. Do not return JSON. Return only the text of your answer. Keep your response to 2-4 sentences.

# Candidate's Question:
%q

# Your Answer:`,
		digest.Role, digest.AverageScore, digest.OverallSummary,
		strings.Join(digest.ActionableTips, "; "), entries, question)
}

func resumePrompt(resumeText string) string {
	return fmt.Sprintf("Analyze the following resume text. Your primary task is to extract all technical, soft, and other relevant skills mentioned. Populate the rest of the schema as accurately as possible. The 'skills' array should be a comprehensive list. Resume:\n\n%s", resumeText)
}

func roadmapPrompt(skills []string, targetRole string) string {
	return fmt.Sprintf(`Act as an expert career coach. A candidate with the following skills: [%s] wants to become a %q.
Your task is to perform a detailed skill gap analysis. First, determine the essential skills required for the target role. Then, compare them to the candidate's current skills to identify what's missing. List these missing skills in the 'skillGaps' field.
Based on these gaps, create a detailed short-term (1-3 months) and long-term (6-12 months) plan to acquire them. The plans should include specific topics, project ideas, and online resources.`,
		strings.Join(skills, ", "), targetRole)
}
