package template

// catalog is the authored template set. Every entry stays within MaxLines
// lines. Placeholders: {date}, {time}, {staff}, {service}.
var catalog = map[templateKey]Template{
	// generic_reply
	{KeyGenericReply, "en"}: {Text: "Thanks for your message! I can help you book an appointment.\nJust tell me the service, day and time you'd like.", Tone: ToneNeutral},
	{KeyGenericReply, "ru"}: {Text: "Спасибо за сообщение! Я помогу вам записаться.\nПросто напишите услугу, день и время.", Tone: ToneNeutral},
	{KeyGenericReply, "es"}: {Text: "¡Gracias por tu mensaje! Puedo ayudarte a reservar una cita.\nDime el servicio, el día y la hora que prefieras.", Tone: ToneNeutral},
	{KeyGenericReply, "pt"}: {Text: "Obrigado pela mensagem! Posso ajudar a marcar um horário.\nDiga o serviço, o dia e a hora que prefere.", Tone: ToneNeutral},
	{KeyGenericReply, "he"}: {Text: "תודה על ההודעה! אפשר לעזור לך לקבוע תור.\nפשוט כתבו שירות, יום ושעה.", Tone: ToneNeutral},

	// booking_prompt
	{KeyBookingPrompt, "en"}: {Text: "Happy to get you booked in!\nWhich day and time would work for you?", Tone: ToneNeutral},
	{KeyBookingPrompt, "ru"}: {Text: "С удовольствием запишу вас!\nКакой день и время вам подходят?", Tone: ToneNeutral},
	{KeyBookingPrompt, "es"}: {Text: "¡Con gusto te reservo!\n¿Qué día y hora te vienen bien?", Tone: ToneNeutral},
	{KeyBookingPrompt, "pt"}: {Text: "Com prazer faço a sua marcação!\nQue dia e hora ficam bem para você?", Tone: ToneNeutral},
	{KeyBookingPrompt, "he"}: {Text: "בשמחה נקבע לך תור!\nאיזה יום ושעה נוחים לך?", Tone: ToneNeutral},

	// slot_found
	{KeySlotFound, "en"}: {Text: "Great news — {date} at {time} is available with {staff}!\nShall I hold it for you?", Tone: ToneCelebratory},
	{KeySlotFound, "ru"}: {Text: "Отличные новости — {date} в {time} свободно у мастера {staff}!\nЗабронировать для вас?", Tone: ToneCelebratory},
	{KeySlotFound, "es"}: {Text: "¡Buenas noticias! El {date} a las {time} está libre con {staff}.\n¿Te lo reservo?", Tone: ToneCelebratory},
	{KeySlotFound, "pt"}: {Text: "Ótima notícia — {date} às {time} está livre com {staff}!\nQuer que eu reserve?", Tone: ToneCelebratory},
	{KeySlotFound, "he"}: {Text: "חדשות טובות — {date} בשעה {time} פנוי אצל {staff}!\nלשריין לך?", Tone: ToneCelebratory},

	// slot_unavailable
	{KeySlotUnavailable, "en"}: {Text: "I'm so sorry — {date} at {time} is already taken.\nBut don't worry, I have a few other options for you:", Tone: ToneEmpathetic},
	{KeySlotUnavailable, "ru"}: {Text: "Очень жаль — {date} в {time} уже занято.\nНо не переживайте, у меня есть другие варианты:", Tone: ToneEmpathetic},
	{KeySlotUnavailable, "es"}: {Text: "Lo siento mucho — el {date} a las {time} ya está ocupado.\nPero tranquilo, tengo otras opciones para ti:", Tone: ToneEmpathetic},
	{KeySlotUnavailable, "pt"}: {Text: "Sinto muito — {date} às {time} já está ocupado.\nMas não se preocupe, tenho outras opções para você:", Tone: ToneEmpathetic},
	{KeySlotUnavailable, "he"}: {Text: "מצטערים — {date} בשעה {time} כבר תפוס.\nאבל אל דאגה, יש לי כמה אפשרויות אחרות:", Tone: ToneEmpathetic},

	// alternatives_header
	{KeyAlternatives, "en"}: {Text: "Here are the closest available times:", Tone: ToneNeutral},
	{KeyAlternatives, "ru"}: {Text: "Вот ближайшее свободное время:", Tone: ToneNeutral},
	{KeyAlternatives, "es"}: {Text: "Estos son los horarios disponibles más cercanos:", Tone: ToneNeutral},
	{KeyAlternatives, "pt"}: {Text: "Estes são os horários disponíveis mais próximos:", Tone: ToneNeutral},
	{KeyAlternatives, "he"}: {Text: "אלו הזמנים הפנויים הקרובים ביותר:", Tone: ToneNeutral},

	// no_alternatives
	{KeyNoAlternatives, "en"}: {Text: "I couldn't find any nearby openings right now.\nWould you like to try a different day, or talk to our staff directly?", Tone: ToneEmpathetic},
	{KeyNoAlternatives, "ru"}: {Text: "Сейчас я не нашла свободных окошек поблизости.\nПопробуем другой день или свяжетесь с администратором?", Tone: ToneEmpathetic},
	{KeyNoAlternatives, "es"}: {Text: "No encontré huecos cercanos por ahora.\n¿Probamos otro día o prefieres hablar con nuestro equipo?", Tone: ToneEmpathetic},
	{KeyNoAlternatives, "pt"}: {Text: "Não encontrei horários próximos no momento.\nQuer tentar outro dia ou falar com a nossa equipe?", Tone: ToneEmpathetic},
	{KeyNoAlternatives, "he"}: {Text: "לא מצאתי חלונות פנויים קרובים כרגע.\nלנסות יום אחר, או לדבר ישירות עם הצוות?", Tone: ToneEmpathetic},

	// popular_times_header
	{KeyPopularHeader, "en"}: {Text: "These times are popular with our clients:", Tone: ToneNeutral},
	{KeyPopularHeader, "ru"}: {Text: "Это время чаще всего выбирают наши клиенты:", Tone: ToneNeutral},
	{KeyPopularHeader, "es"}: {Text: "Estos horarios son los favoritos de nuestros clientes:", Tone: ToneNeutral},
	{KeyPopularHeader, "pt"}: {Text: "Estes horários são os favoritos dos nossos clientes:", Tone: ToneNeutral},
	{KeyPopularHeader, "he"}: {Text: "אלו השעות הפופולריות אצל הלקוחות שלנו:", Tone: ToneNeutral},

	// popular_bucket
	{KeyPopularBucket, "en"}: {Text: "{day} at {hour}:00", Tone: ToneNeutral},
	{KeyPopularBucket, "ru"}: {Text: "{day}, {hour}:00", Tone: ToneNeutral},
	{KeyPopularBucket, "es"}: {Text: "{day} a las {hour}:00", Tone: ToneNeutral},
	{KeyPopularBucket, "pt"}: {Text: "{day} às {hour}:00", Tone: ToneNeutral},
	{KeyPopularBucket, "he"}: {Text: "{day} בשעה {hour}:00", Tone: ToneNeutral},

	// session_expired
	{KeySessionExpired, "en"}: {Text: "It's been a little while, so I've lost track of our conversation.\nCould you tell me again what you'd like to book?", Tone: ToneApologetic},
	{KeySessionExpired, "ru"}: {Text: "Прошло немного времени, и я потеряла нить разговора.\nНапомните, пожалуйста, на что вы хотели записаться?", Tone: ToneApologetic},
	{KeySessionExpired, "es"}: {Text: "Ha pasado un rato y perdí el hilo de nuestra conversación.\n¿Me recuerdas qué querías reservar?", Tone: ToneApologetic},
	{KeySessionExpired, "pt"}: {Text: "Já faz um tempinho e perdi o fio da nossa conversa.\nPode me lembrar o que queria marcar?", Tone: ToneApologetic},
	{KeySessionExpired, "he"}: {Text: "עבר קצת זמן ואיבדתי את חוט השיחה.\nאפשר להזכיר לי מה רצית לקבוע?", Tone: ToneApologetic},

	// escalation
	{KeyEscalation, "en"}: {Text: "Let's get you sorted the direct way — our team will be happy to help.\nJust call the salon or tap below and we'll reach out to you.", Tone: ToneEmpathetic},
	{KeyEscalation, "ru"}: {Text: "Давайте решим напрямую — наша команда с радостью поможет.\nПозвоните в салон или нажмите ниже, и мы сами свяжемся с вами.", Tone: ToneEmpathetic},
	{KeyEscalation, "es"}: {Text: "Resolvámoslo directamente — nuestro equipo te ayudará encantado.\nLlama al salón o pulsa abajo y nos pondremos en contacto contigo.", Tone: ToneEmpathetic},
	{KeyEscalation, "pt"}: {Text: "Vamos resolver diretamente — nossa equipe terá prazer em ajudar.\nLigue para o salão ou toque abaixo que entraremos em contato.", Tone: ToneEmpathetic},
	{KeyEscalation, "he"}: {Text: "בואו נסדר את זה ישירות — הצוות שלנו ישמח לעזור.\nהתקשרו לסלון או לחצו למטה ונחזור אליכם.", Tone: ToneEmpathetic},

	// apology
	{KeyApology, "en"}: {Text: "I'm sorry, something went wrong on my side.\nPlease try again in a moment.", Tone: ToneApologetic},
	{KeyApology, "ru"}: {Text: "Простите, у меня что-то пошло не так.\nПожалуйста, попробуйте ещё раз чуть позже.", Tone: ToneApologetic},
	{KeyApology, "es"}: {Text: "Lo siento, algo salió mal por mi parte.\nInténtalo de nuevo en un momento, por favor.", Tone: ToneApologetic},
	{KeyApology, "pt"}: {Text: "Desculpe, algo deu errado do meu lado.\nTente novamente em instantes, por favor.", Tone: ToneApologetic},
	{KeyApology, "he"}: {Text: "מצטערים, משהו השתבש אצלי.\nנסו שוב בעוד רגע.", Tone: ToneApologetic},

	// confirm_prompt
	{KeyConfirmPrompt, "en"}: {Text: "Just to confirm: {date} at {time} with {staff}.\nShall I lock it in?", Tone: ToneNeutral},
	{KeyConfirmPrompt, "ru"}: {Text: "Подтвердим: {date} в {time}, мастер {staff}.\nБронируем?", Tone: ToneNeutral},
	{KeyConfirmPrompt, "es"}: {Text: "Para confirmar: el {date} a las {time} con {staff}.\n¿Lo dejo reservado?", Tone: ToneNeutral},
	{KeyConfirmPrompt, "pt"}: {Text: "Só para confirmar: {date} às {time} com {staff}.\nPosso garantir?", Tone: ToneNeutral},
	{KeyConfirmPrompt, "he"}: {Text: "רק לוודא: {date} בשעה {time} אצל {staff}.\nלסגור את זה?", Tone: ToneNeutral},

	// booking_confirmed
	{KeyBookingConfirmed, "en"}: {Text: "You're all set — {date} at {time} with {staff}. 🎉\nWe look forward to seeing you!", Tone: ToneCelebratory},
	{KeyBookingConfirmed, "ru"}: {Text: "Готово — {date} в {time}, мастер {staff}. 🎉\nБудем рады вас видеть!", Tone: ToneCelebratory},
	{KeyBookingConfirmed, "es"}: {Text: "¡Listo! El {date} a las {time} con {staff}. 🎉\n¡Te esperamos!", Tone: ToneCelebratory},
	{KeyBookingConfirmed, "pt"}: {Text: "Tudo certo — {date} às {time} com {staff}. 🎉\nEsperamos você!", Tone: ToneCelebratory},
	{KeyBookingConfirmed, "he"}: {Text: "הכול מסודר — {date} בשעה {time} אצל {staff}. 🎉\nנשמח לראותך!", Tone: ToneCelebratory},

	// choice labels
	{KeyChoiceSameDay, "en"}: {Text: "Same day, other times", Tone: ToneNeutral},
	{KeyChoiceSameDay, "ru"}: {Text: "Тот же день, другое время", Tone: ToneNeutral},
	{KeyChoiceSameDay, "es"}: {Text: "Mismo día, otra hora", Tone: ToneNeutral},
	{KeyChoiceSameDay, "pt"}: {Text: "Mesmo dia, outro horário", Tone: ToneNeutral},
	{KeyChoiceSameDay, "he"}: {Text: "אותו יום, שעות אחרות", Tone: ToneNeutral},

	{KeyChoiceSameTime, "en"}: {Text: "Same time, other days", Tone: ToneNeutral},
	{KeyChoiceSameTime, "ru"}: {Text: "То же время, другой день", Tone: ToneNeutral},
	{KeyChoiceSameTime, "es"}: {Text: "Misma hora, otro día", Tone: ToneNeutral},
	{KeyChoiceSameTime, "pt"}: {Text: "Mesma hora, outro dia", Tone: ToneNeutral},
	{KeyChoiceSameTime, "he"}: {Text: "אותה שעה, ימים אחרים", Tone: ToneNeutral},

	{KeyChoicePopular, "en"}: {Text: "Show popular times", Tone: ToneNeutral},
	{KeyChoicePopular, "ru"}: {Text: "Популярное время", Tone: ToneNeutral},
	{KeyChoicePopular, "es"}: {Text: "Ver horarios populares", Tone: ToneNeutral},
	{KeyChoicePopular, "pt"}: {Text: "Ver horários populares", Tone: ToneNeutral},
	{KeyChoicePopular, "he"}: {Text: "הצג שעות פופולריות", Tone: ToneNeutral},

	{KeyChoiceSeeMore, "en"}: {Text: "See more", Tone: ToneNeutral},
	{KeyChoiceSeeMore, "ru"}: {Text: "Показать ещё", Tone: ToneNeutral},
	{KeyChoiceSeeMore, "es"}: {Text: "Ver más", Tone: ToneNeutral},
	{KeyChoiceSeeMore, "pt"}: {Text: "Ver mais", Tone: ToneNeutral},
	{KeyChoiceSeeMore, "he"}: {Text: "עוד אפשרויות", Tone: ToneNeutral},

	{KeyChoiceEscalate, "en"}: {Text: "Contact staff directly", Tone: ToneNeutral},
	{KeyChoiceEscalate, "ru"}: {Text: "Связаться с администратором", Tone: ToneNeutral},
	{KeyChoiceEscalate, "es"}: {Text: "Hablar con el equipo", Tone: ToneNeutral},
	{KeyChoiceEscalate, "pt"}: {Text: "Falar com a equipe", Tone: ToneNeutral},
	{KeyChoiceEscalate, "he"}: {Text: "ליצור קשר עם הצוות", Tone: ToneNeutral},

	{KeyChoiceConfirm, "en"}: {Text: "Confirm", Tone: ToneNeutral},
	{KeyChoiceConfirm, "ru"}: {Text: "Подтвердить", Tone: ToneNeutral},
	{KeyChoiceConfirm, "es"}: {Text: "Confirmar", Tone: ToneNeutral},
	{KeyChoiceConfirm, "pt"}: {Text: "Confirmar", Tone: ToneNeutral},
	{KeyChoiceConfirm, "he"}: {Text: "אישור", Tone: ToneNeutral},

	{KeyChoiceCancel, "en"}: {Text: "Back to options", Tone: ToneNeutral},
	{KeyChoiceCancel, "ru"}: {Text: "Назад к вариантам", Tone: ToneNeutral},
	{KeyChoiceCancel, "es"}: {Text: "Volver a las opciones", Tone: ToneNeutral},
	{KeyChoiceCancel, "pt"}: {Text: "Voltar às opções", Tone: ToneNeutral},
	{KeyChoiceCancel, "he"}: {Text: "חזרה לאפשרויות", Tone: ToneNeutral},

	// weekday labels, 0 = Sunday
	{"weekday_0", "en"}: {Text: "Sunday", Tone: ToneNeutral},
	{"weekday_1", "en"}: {Text: "Monday", Tone: ToneNeutral},
	{"weekday_2", "en"}: {Text: "Tuesday", Tone: ToneNeutral},
	{"weekday_3", "en"}: {Text: "Wednesday", Tone: ToneNeutral},
	{"weekday_4", "en"}: {Text: "Thursday", Tone: ToneNeutral},
	{"weekday_5", "en"}: {Text: "Friday", Tone: ToneNeutral},
	{"weekday_6", "en"}: {Text: "Saturday", Tone: ToneNeutral},

	{"weekday_0", "ru"}: {Text: "Воскресенье", Tone: ToneNeutral},
	{"weekday_1", "ru"}: {Text: "Понедельник", Tone: ToneNeutral},
	{"weekday_2", "ru"}: {Text: "Вторник", Tone: ToneNeutral},
	{"weekday_3", "ru"}: {Text: "Среда", Tone: ToneNeutral},
	{"weekday_4", "ru"}: {Text: "Четверг", Tone: ToneNeutral},
	{"weekday_5", "ru"}: {Text: "Пятница", Tone: ToneNeutral},
	{"weekday_6", "ru"}: {Text: "Суббота", Tone: ToneNeutral},

	{"weekday_0", "es"}: {Text: "domingo", Tone: ToneNeutral},
	{"weekday_1", "es"}: {Text: "lunes", Tone: ToneNeutral},
	{"weekday_2", "es"}: {Text: "martes", Tone: ToneNeutral},
	{"weekday_3", "es"}: {Text: "miércoles", Tone: ToneNeutral},
	{"weekday_4", "es"}: {Text: "jueves", Tone: ToneNeutral},
	{"weekday_5", "es"}: {Text: "viernes", Tone: ToneNeutral},
	{"weekday_6", "es"}: {Text: "sábado", Tone: ToneNeutral},

	{"weekday_0", "pt"}: {Text: "domingo", Tone: ToneNeutral},
	{"weekday_1", "pt"}: {Text: "segunda-feira", Tone: ToneNeutral},
	{"weekday_2", "pt"}: {Text: "terça-feira", Tone: ToneNeutral},
	{"weekday_3", "pt"}: {Text: "quarta-feira", Tone: ToneNeutral},
	{"weekday_4", "pt"}: {Text: "quinta-feira", Tone: ToneNeutral},
	{"weekday_5", "pt"}: {Text: "sexta-feira", Tone: ToneNeutral},
	{"weekday_6", "pt"}: {Text: "sábado", Tone: ToneNeutral},

	{"weekday_0", "he"}: {Text: "יום ראשון", Tone: ToneNeutral},
	{"weekday_1", "he"}: {Text: "יום שני", Tone: ToneNeutral},
	{"weekday_2", "he"}: {Text: "יום שלישי", Tone: ToneNeutral},
	{"weekday_3", "he"}: {Text: "יום רביעי", Tone: ToneNeutral},
	{"weekday_4", "he"}: {Text: "יום חמישי", Tone: ToneNeutral},
	{"weekday_5", "he"}: {Text: "יום שישי", Tone: ToneNeutral},
	{"weekday_6", "he"}: {Text: "שבת", Tone: ToneNeutral},
}
