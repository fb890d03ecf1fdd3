package pool

import "fmt"

// Authorize resolves a presented secret to an active participant of the
// pool. Candidates are fetched and compared in constant time one by one,
// without early exit, so response timing never narrows down secret material.
// A missing secret is an authorization failure, not a validation error.
func Authorize(repo PoolRepository, p *Pool, secret string) (*Participant, error) {
	if secret == "" {
		return nil, ErrUnauthorized
	}
	participants, err := repo.ListParticipants(p.ID, true)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	var match *Participant
	for i := range participants {
		if SecretsEqual(participants[i].Secret, secret) && match == nil {
			match = &participants[i]
		}
	}
	if match == nil {
		return nil, ErrUnauthorized
	}
	return match, nil
}

// AuthorizeCaptain resolves a presented secret and additionally requires it
// to be the pool's captain secret. Non-captain participants fail exactly
// like unknown secrets.
func AuthorizeCaptain(repo PoolRepository, p *Pool, secret string) (*Participant, error) {
	participant, err := Authorize(repo, p, secret)
	if err != nil {
		return nil, err
	}
	if !SecretsEqual(participant.Secret, p.CaptainSecret) {
		return nil, ErrUnauthorized
	}
	return participant, nil
}

// IsCaptain reports whether the participant holds the pool's captain secret.
func IsCaptain(p *Pool, participant *Participant) bool {
	return SecretsEqual(participant.Secret, p.CaptainSecret)
}
