package instructions

import (
	"fmt"
	"mediplan-service/internal/pkg/constvars"
)

const parsePromptFormat = `You are a medical prescription parser. Analyze the provided prescription text and extract structured medication and activity information.

INPUT:
Prescription text: %s
Language: %s

OUTPUT FORMAT (JSON):
{
  "medications": [
    {
      "name": "string - exact medication name",
      "dosage": "string - dosage amount and unit",
      "frequency": "string - how often to take",
      "duration": "string - how long to take",
      "timing": "string - when to take (morning, before meals, etc.)",
      "instructions": "string - additional instructions"
    }
  ],
  "activities": [
    {
      "name": "string - activity name",
      "duration": "string - how long per session",
      "frequency": "string - how often",
      "timing": "string - when to do it",
      "instructions": "string - additional instructions"
    }
  ],
  "followUpDate": "string - YYYY-MM-DD follow-up date if mentioned, otherwise omit",
  "notes": "string - any remaining notes, otherwise omit"
}

PARSING RULES:
1. Extract exact medication names (brand/generic)
2. Parse dosage amounts with units (mg, ml, units, etc.)
3. Identify frequency patterns (daily, twice daily, as needed, etc.)
4. Determine duration from phrases like "for 7 days" or "until finished"
5. Capture special instructions ("with food", "before bed", etc.)
6. List prescribed activities (exercise, physiotherapy, etc.) separately from medications
7. Note a follow-up appointment date when one is mentioned

If information is unclear, return "unknown" for that field.

Return ONLY the JSON object, no additional text.`

func buildParsePrompt(instruction, language string) string {
	languageName := "English"
	if language == constvars.AILanguageMalay {
		languageName = "Malay"
	}
	return fmt.Sprintf(parsePromptFormat, instruction, languageName)
}
