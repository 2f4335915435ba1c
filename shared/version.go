package shared

// Version of the audio-time module, reported by consumers in their logs.
const Version = "0.1.0"
