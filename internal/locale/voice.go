package locale

// Speech tables are keyed by BCP-47 code ("hi-IN"), matching the speech APIs.
const DefaultSpeechCode = "hi-IN"

var MockTranscripts = map[string]string{
	"hi-IN": "मेरी फसल में बीमारी है",
	"en-IN": "My crop has disease",
	"kn-IN": "ನನ್ನ ಬೆಳೆಗೆ ರೋಗವಿದೆ",
	"ta-IN": "என் பயிரில் நோய் உள்ளது",
	"te-IN": "నా పంటలో వ్యాధి ఉంది",
	"mr-IN": "माझ्या पिकात रोग आहे",
	"bn-IN": "আমার ফসলে রোগ আছে",
	"gu-IN": "મારા પાકમાં રોગ છે",
}

var VoiceNames = map[string]string{
	"hi-IN": "hi-IN-Wavenet-A",
	"en-IN": "en-IN-Wavenet-A",
	"kn-IN": "kn-IN-Wavenet-A",
	"ta-IN": "ta-IN-Wavenet-A",
	"te-IN": "te-IN-Wavenet-A",
	"mr-IN": "mr-IN-Wavenet-A",
	"bn-IN": "bn-IN-Wavenet-A",
	"gu-IN": "gu-IN-Wavenet-A",
}

// LookupSpeech is Lookup for tables keyed by speech code.
func LookupSpeech(table map[string]string, code string) (string, bool) {
	if v, ok := table[code]; ok {
		return v, true
	}
	return table[DefaultSpeechCode], false
}
