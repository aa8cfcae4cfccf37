package moodeng

const Version = "0.1.0"
