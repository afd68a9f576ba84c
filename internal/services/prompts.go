package services

import "fmt"

const certificatePrompt = `Analyze this certificate image and extract its information.

Respond ONLY with a valid JSON object (no markdown, no code blocks) with the following structure:
{
  "recipientName": "Name of the certificate recipient or null",
  "eventTitle": "Title of the event or course or null",
  "eventDate": "Date of the event or issuance or null",
  "description": "Short description of what the certificate attests or null",
  "issuedBy": "Issuing organization or person or null",
  "additionalNotes": "Any other relevant detail or null"
}`

const maxPromptTextLength = 4000

// summaryPrompt builds the PDF summarization prompt, truncating overly long
// extracted text.
func summaryPrompt(text string) string {
	if len(text) > maxPromptTextLength {
		text = text[:maxPromptTextLength] + "..."
	}

	return fmt.Sprintf(`Summarize the following document in a few concise sentences. Respond with plain text only.

Document text:
%s`, text)
}
