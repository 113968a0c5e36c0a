// Package textscore implements the text analysis behind interview answer
// evaluation, speech fluency scoring, and resume analysis: tokenizing,
// keyword extraction, TF-IDF similarity, rule-based grammar checks, a
// lexicon sentiment model, and the score formulas built on top of them.
//
// Everything here is pure computation. Persistence and HTTP shaping live in
// the server services; this package only turns text into numbers and
// feedback strings.
package textscore
