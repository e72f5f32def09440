package formatter

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// AboutMarkdown is the About page body.
const AboutMarkdown = `# À propos de cette application

## Objectif de l'application

Cette application est conçue pour réduire les **temps d'arrêt** et les **délais de maintenance** en facilitant les contrôles rapides et efficaces des équipements de soudage.

### Fonctionnalités

- Analyse basée sur un formulaire pour le contrôle d'état des pinces de soudage.
- Enregistrement automatique des vérifications KO (non conformes) avec plans d'action.
- Page récapitulative facile à comprendre.

## Renault Usine Tanger

**L'usine Renault Tanger** est l'une des installations de fabrication les plus avancées au monde. Réputée pour sa durabilité environnementale et son efficacité de production, l'usine joue un rôle clé dans les opérations mondiales de Renault.

### Points clés

- Zéro émission de carbone.
- Processus hautement automatisés.
- Technologies avancées de soudage et de peinture.

## Langue et droits d'auteur

- **Langue** : L'application est principalement disponible en français, conformément à son environnement opérationnel.
- **Droits d'auteur** : Renault Group © 2024.

Pour toute question, veuillez contacter l'administrateur du système.
`

// ContactMarkdown is the Contact/Help page body.
const ContactMarkdown = `# Contact/Help

## Besoin d'aide ?

Vous pouvez nous contacter via les informations suivantes :

- **Email** : support@renaultapp.com
- **Téléphone** : +212 600 000 000
- **Adresse** : Renault Usine Tanger, Zone Industrielle, Tanger, Maroc

Nous sommes disponibles du **lundi au vendredi** de **9h à 18h**.

Merci de votre confiance !
`

// RenderMarkdown renders md for the terminal, wrapped at wrap columns.
func RenderMarkdown(md string, wrap int) (string, error) {
	if wrap <= 0 {
		wrap = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
