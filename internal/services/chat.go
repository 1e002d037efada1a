package services

import (
	"context"
	"coordinate-converter-service/internal/domain"
	"coordinate-converter-service/internal/ports"
	"errors"
	"fmt"
	"log"
)

// ChatReply is what the assistant says back for one turn.
type ChatReply struct {
	Text      string
	Converted bool
}

const (
	replyNotUnderstood = "Maaf, saya tidak memahami permintaan Anda. Mohon gunakan format seperti 'konversi [koordinat X], [koordinat Y] ke [sistem target]'."
	replyUnknownTarget = "Maaf, sistem koordinat target tidak dikenali."
	replyCannotConvert = "Maaf, saya tidak dapat melakukan konversi dengan format tersebut. Bisakah Anda coba lagi?"
	replyUnavailable   = "Maaf, layanan pemahaman teks sedang tidak tersedia. Mohon gunakan format seperti 'konversi [koordinat X], [koordinat Y] ke [sistem target]'."
)

// RespondChat handles one conversational turn: interpret the message,
// run the conversion, persist the outcome, and phrase the answer.
//
// Every failure becomes a polite reply; nothing on this path reaches
// the caller as an error. Successful conversions are appended to the
// history when one is wired, and a failed append never spoils the
// answer.
func RespondChat(
	ctx context.Context,
	message string,
	catalogue *domain.Catalogue,
	extractor ports.RequestExtractor,
	provider ports.TransformProvider,
	history ports.ConversionHistory,
) ChatReply {
	interp, err := InterpretRequest(ctx, message, catalogue, extractor)
	if err != nil {
		log.Printf("chat: interpretation failed: %v", err)
		if errors.Is(err, domain.ErrCollaboratorUnavailable) {
			return ChatReply{Text: replyUnavailable}
		}
		return ChatReply{Text: replyNotUnderstood}
	}

	result, err := Convert(ctx, interp.Request, provider)
	if err != nil {
		log.Printf("chat: conversion failed kind=%s err=%v", interp.Kind, err)
		if errors.Is(err, domain.ErrUnknownCRS) {
			return ChatReply{Text: replyUnknownTarget}
		}
		return ChatReply{Text: replyCannotConvert}
	}

	if history != nil {
		rec := ports.ConversionRecord{
			UserQuery:       message,
			OriginalCoords:  fmt.Sprintf("%s, %s", interp.Request.RawX, interp.Request.RawY),
			ConvertedCoords: fmt.Sprintf("%s, %s", result.FormattedX, result.FormattedY),
			SourceCRS:       interp.Request.SourceCRS,
			TargetCRS:       interp.Request.TargetCRS,
		}
		if err := history.Append(ctx, rec); err != nil {
			log.Printf("chat: history append failed: %v", err)
		}
	}

	text := fmt.Sprintf("Tentu, koordinat hasil konversi Anda adalah: `%s, %s`.", result.FormattedX, result.FormattedY)
	return ChatReply{Text: text, Converted: true}
}
